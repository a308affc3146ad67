package pages

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"fyyur/internal/errs"
)

// ParamID reads the :id path segment. Anything that is not a positive integer
// cannot name a record, so it is answered with 404.
func ParamID(c *gin.Context, what string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		Error(c, errs.NewNotFoundError(what+" not found"))
		return 0, false
	}
	return uint(id), true
}

// ParseYesNo reads the seeking_* select. Blank means no.
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "no", "n", "false", "off", "0":
		return false, nil
	case "yes", "y", "true", "on", "1":
		return true, nil
	}
	return false, errors.Errorf("%q is not yes or no", s)
}

func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
