package params

import (
	"net/url"

	"github.com/labstack/echo/v4"
)

// Path returns the named path parameter percent-decoded, so an email sent as
// "jane%40jnu.ac.bd" matches the stored "jane@jnu.ac.bd". A value that does
// not decode is returned as is.
func Path(c echo.Context, name string) string {
	raw := c.Param(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
