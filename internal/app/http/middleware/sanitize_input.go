package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeAndCleanInputMiddleware strips markup from every string value of
// form and JSON bodies on write requests. Entities are decoded back so plain
// text like "Bar & Grill" is stored as typed; templates escape on output.
func SanitizeAndCleanInputMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()
	clean := func(s string) string {
		return html.UnescapeString(policy.Sanitize(s))
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		switch c.ContentType() {
		case gin.MIMEJSON:
			sanitizeJSON(c, clean)
		case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
			sanitizeForm(c, clean)
		}
		if c.IsAborted() {
			return
		}
		c.Next()
	}
}

func sanitizeForm(c *gin.Context, clean func(string) string) {
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}
	} else if err := c.Request.ParseForm(); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	// Form holds PostForm's values plus the query string; all copies are
	// cleaned so binding sees the same result whichever one it reads.
	sources := []map[string][]string{c.Request.Form, c.Request.PostForm}
	if c.Request.MultipartForm != nil {
		sources = append(sources, c.Request.MultipartForm.Value)
	}
	for _, values := range sources {
		for k, vs := range values {
			for i, v := range vs {
				values[k][i] = clean(v)
			}
		}
	}
}

func sanitizeJSON(c *gin.Context, clean func(string) string) {
	buf, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}
	if len(bytes.TrimSpace(buf)) == 0 {
		c.Request.Body = io.NopCloser(bytes.NewReader(buf))
		return
	}

	var body interface{}
	if err := json.Unmarshal(buf, &body); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
		return
	}

	newBody, _ := json.Marshal(cleanValue(body, clean))
	c.Request.Body = io.NopCloser(bytes.NewReader(newBody))
	c.Request.ContentLength = int64(len(newBody))
}

// cleanValue walks decoded JSON; numbers and booleans pass through untouched.
func cleanValue(v interface{}, clean func(string) string) interface{} {
	switch t := v.(type) {
	case string:
		return clean(t)
	case []interface{}:
		for i := range t {
			t[i] = cleanValue(t[i], clean)
		}
		return t
	case map[string]interface{}:
		for k := range t {
			t[k] = cleanValue(t[k], clean)
		}
		return t
	default:
		return v
	}
}
