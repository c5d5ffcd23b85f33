package urls

import "testing"

func TestStoreResource(t *testing.T) {
	tests := []struct {
		storeID string
		want    string
	}{
		{"42", "/api/stores/42"},
		{"a1b2-c3", "/api/stores/a1b2-c3"},
		{"with space", "/api/stores/with%20space"},
		{"a/b", "/api/stores/a%2Fb"},
	}

	for _, tt := range tests {
		if got := StoreResource(tt.storeID); got != tt.want {
			t.Errorf("StoreResource(%q) = %q, want %q", tt.storeID, got, tt.want)
		}
	}
}

func TestPublicAPIURL(t *testing.T) {
	tests := []struct {
		origin, storeID, want string
	}{
		{"http://localhost:3000", "42", "http://localhost:3000/api/42"},
		{"https://admin.example.com/", "s1", "https://admin.example.com/api/s1"},
		{"", "s1", "/api/s1"},
	}

	for _, tt := range tests {
		if got := PublicAPIURL(tt.origin, tt.storeID); got != tt.want {
			t.Errorf("PublicAPIURL(%q, %q) = %q, want %q", tt.origin, tt.storeID, got, tt.want)
		}
	}
}

func TestJoin(t *testing.T) {
	if got := Join("http://localhost:3000/", "/api/stores/1"); got != "http://localhost:3000/api/stores/1" {
		t.Errorf("Join() = %q", got)
	}
	if got := BillboardsPage("7"); got != "/7/billboards" {
		t.Errorf("BillboardsPage() = %q", got)
	}
}
