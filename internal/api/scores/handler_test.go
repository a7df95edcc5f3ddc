package scores

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/scores?"+rawQuery, nil)
	return c
}

func TestStaffFromQuery(t *testing.T) {
	t.Run("defaults to the caller", func(t *testing.T) {
		c := queryContext(t, "date=2025-08-20")
		assert.Equal(t, "caller-1", staffFromQuery(c, "caller-1"))
	})

	t.Run("query param overrides the caller", func(t *testing.T) {
		c := queryContext(t, "staffUserId=staff-7")
		assert.Equal(t, "staff-7", staffFromQuery(c, "caller-1"))
	})

	t.Run("empty override is ignored", func(t *testing.T) {
		c := queryContext(t, "staffUserId=")
		assert.Equal(t, "caller-1", staffFromQuery(c, "caller-1"))
	})
}

func TestDateFromQuery(t *testing.T) {
	t.Run("parses an explicit date", func(t *testing.T) {
		c := queryContext(t, "date=2025-08-20")
		date, err := dateFromQuery(c)
		require.NoError(t, err)
		assert.Equal(t, "2025-08-20", date.Format(dateLayout))
	})

	t.Run("defaults to today", func(t *testing.T) {
		c := queryContext(t, "")
		date, err := dateFromQuery(c)
		require.NoError(t, err)
		assert.Equal(t, time.Now().Format(dateLayout), date.Format(dateLayout))
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		c := queryContext(t, "date=20-08-2025")
		_, err := dateFromQuery(c)
		assert.Error(t, err)
	})
}
