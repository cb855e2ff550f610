package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gxravel/ytdata/internal/youtube"
)

// Handler serves the YouTube operations as read-only JSON endpoints.
type Handler struct {
	yt     youtube.API
	logger *slog.Logger
}

// NewRouter builds the REST router. An empty origin list or "*" allows any origin.
func NewRouter(yt youtube.API, logger *slog.Logger, origins []string) *gin.Engine {
	h := &Handler{yt: yt, logger: logger}

	router := gin.New()
	router.Use(gin.Recovery(), h.logRequests())
	router.Use(cors.New(corsConfig(origins)))

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/search", h.search)
	router.GET("/search/verbose", h.searchVerbose)
	router.GET("/videos", h.getVideos)
	router.GET("/videos/:id", h.getVideo)
	router.GET("/channels/:name", h.getChannel)
	router.GET("/channels/:name/videos", h.getChannelVideos)
	router.GET("/channels/:name/verbose", h.getChannelVerbose)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func (h *Handler) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.Info("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

type searchQuery struct {
	Q                 string `form:"q" binding:"required"`
	MaxResults        int64  `form:"maxResults" binding:"omitempty,min=1,max=50"`
	Order             string `form:"order"`
	SafeSearch        string `form:"safeSearch"`
	Type              string `form:"type"`
	ChannelID         string `form:"channelId"`
	RegionCode        string `form:"regionCode"`
	RelevanceLanguage string `form:"relevanceLanguage"`
	PublishedAfter    string `form:"publishedAfter"`
	PublishedBefore   string `form:"publishedBefore"`
}

func (q searchQuery) params() youtube.SearchParams {
	return youtube.SearchParams{
		Type:              q.Type,
		SafeSearch:        q.SafeSearch,
		MaxResults:        q.MaxResults,
		Order:             q.Order,
		ChannelID:         q.ChannelID,
		RegionCode:        q.RegionCode,
		RelevanceLanguage: q.RelevanceLanguage,
		PublishedAfter:    q.PublishedAfter,
		PublishedBefore:   q.PublishedBefore,
	}
}

func (h *Handler) search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.yt.Search(c.Request.Context(), q.Q, q.params())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *Handler) searchVerbose(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.yt.SearchVerbose(c.Request.Context(), q.Q, q.params())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *Handler) getVideo(c *gin.Context) {
	video, err := h.yt.GetVideo(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

// getVideos accepts ?id=a,b and repeated ?id=a&id=b.
func (h *Handler) getVideos(c *gin.Context) {
	var ids []string
	for _, v := range c.QueryArray("id") {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one id is required"})
		return
	}

	c.JSON(http.StatusOK, h.yt.GetVideos(c.Request.Context(), ids))
}

// getChannel resolves by username with id fallback, or strictly by id with ?by=id.
func (h *Handler) getChannel(c *gin.Context) {
	var (
		channel youtube.ChannelInfo
		err     error
	)
	if c.Query("by") == "id" {
		channel, err = h.yt.GetChannelByID(c.Request.Context(), c.Param("name"))
	} else {
		channel, err = h.yt.GetChannel(c.Request.Context(), c.Param("name"))
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, channel)
}

func (h *Handler) getChannelVideos(c *gin.Context) {
	ids, err := h.yt.GetChannelVideosList(c.Request.Context(), c.Param("name"), c.Query("playlistId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ids": ids})
}

func (h *Handler) getChannelVerbose(c *gin.Context) {
	result, err := h.yt.GetChannelVerbose(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, youtube.ErrEmptyQuery), errors.Is(err, youtube.ErrEmptyID):
		return http.StatusBadRequest
	case errors.Is(err, youtube.ErrNotFound), errors.Is(err, youtube.ErrChannelNotResolvable):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
