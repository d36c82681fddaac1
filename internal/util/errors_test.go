// internal/util/errors_test.go

package util

import (
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusFromWrappedAppError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: k must be > 0", BadInput("invalid")), http.StatusBadRequest},
		{NotFound("well not found"), http.StatusNotFound},
		{Internal("boom"), http.StatusInternalServerError},
		{fmt.Errorf("plain"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestNewIDIsUUID(t *testing.T) {
	id := NewID()
	if !IsID(id) {
		t.Fatalf("expected uuid, got %q", id)
	}
	if IsID("not-a-uuid") {
		t.Fatalf("expected invalid id to be rejected")
	}
}
