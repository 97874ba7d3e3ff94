package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestOrderStatus_Valid(t *testing.T) {
	valid := []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
	for _, s := range valid {
		if !s.Valid() {
			t.Fatalf("OrderStatus(%q).Valid() = false; want true", s)
		}
	}
	invalid := []OrderStatus{"", "PENDING", "done", "refunded", "pending "}
	for _, s := range invalid {
		if s.Valid() {
			t.Fatalf("OrderStatus(%q).Valid() = true; want false", s)
		}
	}
}

func TestOrderStatus_Bucket(t *testing.T) {
	cases := []struct {
		in   OrderStatus
		want StatusBucket
	}{
		{StatusPending, BucketPending},
		{StatusProcessing, BucketProcessing},
		{StatusShipped, BucketCompleted},
		{StatusDelivered, BucketCompleted},
		{StatusCancelled, BucketCancelled},
		// unknown statuses fall into the pending bucket
		{"mystery", BucketPending},
	}
	for _, tc := range cases {
		if got := tc.in.Bucket(); got != tc.want {
			t.Fatalf("OrderStatus(%q).Bucket() = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestOrderStatus_SharedBucketTransitionIsNeutral(t *testing.T) {
	// shipped -> delivered must not move an order between counters
	if StatusShipped.Bucket() != StatusDelivered.Bucket() {
		t.Fatalf("shipped and delivered must share a bucket: %q vs %q",
			StatusShipped.Bucket(), StatusDelivered.Bucket())
	}
}

func TestUser_PasswordNeverMarshalled(t *testing.T) {
	u := User{
		ID:        1,
		Username:  "demo",
		Password:  "demo123",
		StoreName: "My WhatsApp Store",
		StoreSlug: "my-store",
	}
	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}
	if strings.Contains(string(b), "demo123") || strings.Contains(string(b), "password") {
		t.Fatalf("serialized user leaks password: %s", b)
	}
	if !strings.Contains(string(b), `"store_slug":"my-store"`) {
		t.Fatalf("expected store_slug in serialized user, got %s", b)
	}
}

func TestPatchTypes_OmitEmptyFields(t *testing.T) {
	b, err := json.Marshal(ProductPatch{})
	if err != nil {
		t.Fatalf("marshal empty patch: %v", err)
	}
	if string(b) != "{}" {
		t.Fatalf("empty ProductPatch marshals to %s; want {}", b)
	}

	price := 9.99
	b, err = json.Marshal(ProductPatch{Price: &price})
	if err != nil {
		t.Fatalf("marshal patch: %v", err)
	}
	if string(b) != `{"price":9.99}` {
		t.Fatalf("ProductPatch{Price} marshals to %s", b)
	}
}
