package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestContactValidate(t *testing.T) {
	contact := NewContact("Москва, ул. Модная, 123", "+7 (999) 123-45-67", "hello@vibestore.com")

	if err := contact.Validate(); err != nil {
		t.Errorf("Validate() failed for valid contact: %v", err)
	}
}

func TestContactValidateMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		contact *Contact
	}{
		{"missing address", &Contact{Phone: "+7 (999) 123-45-67", Email: "a@b.com"}},
		{"missing phone", &Contact{Address: "Somewhere", Email: "a@b.com"}},
		{"missing email", &Contact{Address: "Somewhere", Phone: "+7 (999) 123-45-67"}},
		{"whitespace address", &Contact{Address: "   ", Phone: "+7", Email: "a@b.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.contact.Validate(); err == nil {
				t.Errorf("Validate() should fail for %s", tt.name)
			}
		})
	}
}

func TestDefaultContact(t *testing.T) {
	contact := DefaultContact()

	if contact.Address != "Москва, ул. Модная, 123" {
		t.Errorf("DefaultContact() address = %q, want the placeholder address", contact.Address)
	}
	if contact.Phone != "+7 (999) 123-45-67" {
		t.Errorf("DefaultContact() phone = %q, want the placeholder phone", contact.Phone)
	}
	if contact.Email != "hello@vibestore.com" {
		t.Errorf("DefaultContact() email = %q, want the placeholder email", contact.Email)
	}
}

func TestContactSerializationShape(t *testing.T) {
	body, err := json.Marshal(DefaultContact())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if len(payload) != 3 {
		t.Errorf("placeholder fields = %d, want address, phone and email only", len(payload))
	}

	stored := NewContact("Main St 1", "+1 555 0100", "store@example.com")
	stored.ID = 1

	body, err = json.Marshal(stored)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	payload = map[string]interface{}{}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	for _, key := range []string{"id", "created_at", "updated_at"} {
		if _, ok := payload[key]; !ok {
			t.Errorf("stored contact body misses %q", key)
		}
	}
}

func TestNewProduct(t *testing.T) {
	product := NewProduct("T-Shirt", "clothing", 19.99)

	if product.Name != "T-Shirt" {
		t.Errorf("NewProduct() name = %q, want T-Shirt", product.Name)
	}
	if product.Description != "" {
		t.Errorf("NewProduct() description = %q, want empty string", product.Description)
	}
	if product.Image != "" {
		t.Errorf("NewProduct() image = %q, want empty string", product.Image)
	}
	if product.CreatedAt.IsZero() || product.UpdatedAt.IsZero() {
		t.Error("NewProduct() should set timestamps")
	}
}

func TestProductValidate(t *testing.T) {
	product := NewProduct("T-Shirt", "clothing", 0)

	// Zero price is a valid promotional price
	if err := product.Validate(); err != nil {
		t.Errorf("Validate() failed for zero-price product: %v", err)
	}

	product.Name = ""
	if err := product.Validate(); err == nil {
		t.Error("Validate() should fail for empty name")
	}

	product.Name = "T-Shirt"
	product.Category = "  "
	if err := product.Validate(); err == nil {
		t.Error("Validate() should fail for blank category")
	}
}

func TestProductUpdateTimestamp(t *testing.T) {
	product := NewProduct("T-Shirt", "clothing", 19.99)
	before := product.UpdatedAt

	time.Sleep(time.Millisecond)
	product.UpdateTimestamp()

	if !product.UpdatedAt.After(before) {
		t.Error("UpdateTimestamp() should advance UpdatedAt")
	}
}
