package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Chackochi310/News/internal/feed"
	"github.com/Chackochi310/News/internal/logger"
)

// ErrorResponse is the single failure payload of the proxy. Upstream error
// details stay in the logs.
type ErrorResponse struct {
	Message string `json:"message"`
}

const fetchErrorMessage = "Error fetching news"

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "newsdesk",
	})
}

// news forwards query, language and page to the news API and relays the
// body as-is.
func (s *Server) news(c *gin.Context) {
	q := parseQuery(c)

	body, err := s.upstream.Search(c.Request.Context(), q)
	if err != nil {
		s.metrics.UpstreamFailures.Inc()
		s.log.Error("Upstream search failed",
			logger.Error(err),
			logger.String("query", q.Query),
			logger.String("language", q.Language),
			logger.Int("page", q.Page),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: fetchErrorMessage})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func parseQuery(c *gin.Context) feed.Query {
	q := feed.Query{
		Query:    c.Query("query"),
		Language: c.Query("language"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		q.Page = page
	}
	return q.Normalize()
}
