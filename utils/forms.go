package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Form field coercions for the admin edit forms. Empty fields become nil so
// optional columns stay NULL instead of zero.

func FormUint(c *gin.Context, name string) *uint {
	raw := strings.TrimSpace(c.PostForm(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

func FormInt(c *gin.Context, name string) *int {
	raw := strings.TrimSpace(c.PostForm(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func FormFloat(c *gin.Context, name string) *float64 {
	raw := strings.TrimSpace(c.PostForm(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// FormBool reports whether a checkbox was ticked.
func FormBool(c *gin.Context, name string) bool {
	return c.PostForm(name) == "on"
}

// ParamUint parses a numeric path parameter, returning 0 when malformed.
func ParamUint(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}
