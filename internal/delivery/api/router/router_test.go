package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestIsDocumentUpload(t *testing.T) {
	cases := []struct {
		method string
		path   string
		want   bool
	}{
		{http.MethodPost, "/documents", true},
		{http.MethodGet, "/documents", false},
		{http.MethodPost, "/events", false},
		{http.MethodDelete, "/documents/:id", false},
	}

	e := echo.New()
	for _, tc := range cases {
		c := e.NewContext(httptest.NewRequest(tc.method, "/", nil), httptest.NewRecorder())
		c.SetPath(tc.path)

		assert.Equal(t, tc.want, IsDocumentUpload(c), "%s %s", tc.method, tc.path)
	}
}
