package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const maxFormMemory = 32 << 20

// dropBlankFormValues removes the given form fields when they are sent
// empty, so an unselected <select> binds as a nil pointer instead of 0.
// JSON bodies are left untouched.
func dropBlankFormValues(c *gin.Context, keys ...string) {
	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
	default:
		return
	}

	r := c.Request
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		// let ShouldBind report the malformed body
		return
	}

	for _, key := range keys {
		if strings.TrimSpace(r.Form.Get(key)) == "" {
			r.Form.Del(key)
			r.PostForm.Del(key)
			if r.MultipartForm != nil {
				delete(r.MultipartForm.Value, key)
			}
		}
	}
}
