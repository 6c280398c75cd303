// Search HTTP handlers.
//
//   - GET /search/videos?q=&category=&duration=&sortBy=&limit=&skip=
//   - GET /search/channels?q=&limit=&skip=
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-video-backend/internal/services"
)

// SearchVideos godoc
// @ID          searchVideos
// @Summary     Search completed videos
// @Description Every query term is matched case-insensitively against title, description and hashtags.
// @Tags        Search
// @Produce     json
// @Param       q         query  string  true   "Query"
// @Param       category  query  string  false  "Category filter"
// @Param       duration  query  string  false  "short (<= 60s) or long"  Enums(short, long)
// @Param       sortBy    query  string  false  "Sort order"              Enums(date, views, rating) default(date)
// @Param       limit     query  int     false  "Page size"  minimum(1) maximum(100) default(20)
// @Param       skip      query  int     false  "Offset"     minimum(0) default(0)
// @Success     200  {object}  handlers.SuccessResponse  "query, count, total, videos"
// @Failure     400  {object}  handlers.ErrorResponse    "Missing query"
// @Router      /search/videos [get]
func (h *Handlers) SearchVideos(c *gin.Context) {
	limit, skip := pageParams(c, defaultPageSize)
	res, err := h.search.Videos(c.Request.Context(), services.VideoSearchRequest{
		Q:        c.Query("q"),
		Category: c.Query("category"),
		Duration: c.Query("duration"),
		SortBy:   c.Query("sortBy"),
		Limit:    limit,
		Skip:     skip,
	})
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{
		"query":  res.Query,
		"count":  res.Count,
		"total":  res.Total,
		"videos": res.Videos,
	})
}

// SearchChannels godoc
// @ID          searchChannels
// @Summary     Search channels by name or handle
// @Tags        Search
// @Produce     json
// @Param       q      query  string  true   "Query"
// @Param       limit  query  int     false  "Page size"  minimum(1) maximum(100) default(20)
// @Param       skip   query  int     false  "Offset"     minimum(0) default(0)
// @Success     200  {object}  handlers.SuccessResponse  "query, count, total, channels"
// @Failure     400  {object}  handlers.ErrorResponse    "Missing query"
// @Router      /search/channels [get]
func (h *Handlers) SearchChannels(c *gin.Context) {
	limit, skip := pageParams(c, defaultPageSize)
	res, err := h.search.Channels(c.Request.Context(), c.Query("q"), limit, skip)
	if err != nil {
		serviceError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", gin.H{
		"query":    res.Query,
		"count":    res.Count,
		"total":    res.Total,
		"channels": res.Channels,
	})
}
