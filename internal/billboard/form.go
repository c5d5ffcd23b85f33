package billboard

import (
	"fmt"

	"github.com/muurk/storeadmin/internal/storeapi"
	"github.com/muurk/storeadmin/internal/urls"
)

// FormValues is the editable state of the billboard form.
type FormValues struct {
	Label string `json:"label"`
}

// DefaultValues seeds the form from initial data. A nil record yields an
// empty label.
func DefaultValues(initial *storeapi.Billboard) FormValues {
	if initial == nil {
		return FormValues{}
	}
	return FormValues{Label: initial.Label}
}

// Validate checks the form schema: label is required.
// Whitespace counts as content; only the empty string is rejected.
func (v FormValues) Validate() error {
	if len(v.Label) < 1 {
		return &ValidationError{Field: "label", Message: "String must contain at least 1 character(s)"}
	}
	return nil
}

// ToUpdate converts validated form values into the PATCH body.
func (v FormValues) ToUpdate() *storeapi.LabelUpdate {
	return &storeapi.LabelUpdate{Label: v.Label}
}

// ValidationError is a field-level schema failure. It blocks submission
// before any request is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Copy shown by the form. Only the title depends on whether initial data
// was supplied.
const (
	titleEdit   = "Edit Billboard"
	titleCreate = "New Billboard"

	// Description is the subtitle under the form title.
	Description = "Manage store preferences"
	// ActionLabel is the submit button text.
	ActionLabel = "Save Changes"

	// MsgSaved is the notification after a successful save.
	MsgSaved = "Store updated!"
	// MsgSubmitFailed is the single notification for any failed save.
	MsgSubmitFailed = "Something went wrong!"
	// MsgDeleted is the notification after a successful delete.
	MsgDeleted = "Store deleted!"
	// MsgDeleteBlocked is shown for any failed delete. The API gives no
	// detail, so the usual cause is assumed.
	MsgDeleteBlocked = "Make sure you removed all products and categories first!"

	// LabelPlaceholder is the hint text for the label input.
	LabelPlaceholder = "Label"
)

// Heading is the static copy rendered above the form.
type Heading struct {
	Title        string
	Description  string
	ToastMessage string
	ActionLabel  string
}

// HeadingFor returns the form copy for the given initial data.
func HeadingFor(initial *storeapi.Billboard) Heading {
	title := titleCreate
	if initial != nil {
		title = titleEdit
	}
	return Heading{
		Title:        title,
		Description:  Description,
		ToastMessage: MsgSaved,
		ActionLabel:  ActionLabel,
	}
}

// AlertVariant selects how an informational alert is styled.
type AlertVariant string

const (
	AlertPublic AlertVariant = "public"
	AlertAdmin  AlertVariant = "admin"
)

// Alert is a read-only informational block shown to the operator.
type Alert struct {
	Title       string
	Description string
	Variant     AlertVariant
}

// APIAlertFor builds the alert that shows where the store's public API lives.
func APIAlertFor(origin, storeID string) Alert {
	return Alert{
		Title:       "NEXT_PUBLIC_API_URL",
		Description: urls.PublicAPIURL(origin, storeID),
		Variant:     AlertPublic,
	}
}
