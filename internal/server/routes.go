package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nfrund/wscatalog/internal/docs"
	"github.com/nfrund/wscatalog/internal/middleware"
	"github.com/nfrund/wscatalog/internal/pubsub"
	"github.com/nfrund/wscatalog/internal/topicmgr"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter()

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	if s.gatherer != nil {
		s.E.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	catalog := s.E.Group("/catalog")
	catalog.GET("", s.pageGet)
	catalog.GET("/fragment/topics", s.topicFragmentGet)
	catalog.GET("/topics", s.topicsGet)
	catalog.GET("/commands", s.commandsGet)
	catalog.GET("/stats", s.statsGet)
	catalog.GET("/examples", s.examplesGet)
	catalog.GET("/validate/:identifier", s.validateGet, rateLimiter)
}

func (s *Server) pageGet(c echo.Context) error {
	return c.Render(http.StatusOK, "", docs.Page(s.reg, s.examples))
}

func (s *Server) topicFragmentGet(c echo.Context) error {
	return c.Render(http.StatusOK, "", docs.TopicTable(s.reg, c.QueryParam("q")))
}

type topicsResponse struct {
	Group  string   `json:"group,omitempty"`
	Topics []string `json:"topics"`
}

func (s *Server) topicsGet(c echo.Context) error {
	group := c.QueryParam("group")
	if group == "" {
		return c.JSON(http.StatusOK, topicsResponse{Topics: s.reg.TopicList()})
	}
	topics := s.reg.GroupTopics(group)
	if topics == nil {
		return echo.NewHTTPError(http.StatusNotFound, "unknown group "+group)
	}
	return c.JSON(http.StatusOK, topicsResponse{Group: group, Topics: topics})
}

type commandsResponse struct {
	Commands []string          `json:"commands"`
	Actions  map[string]string `json:"actions"`
}

func (s *Server) commandsGet(c echo.Context) error {
	actions := make(map[string]string)
	for _, action := range s.reg.Actions() {
		actions[action], _ = s.reg.ResolveAction(action)
	}
	return c.JSON(http.StatusOK, commandsResponse{Commands: s.reg.CommandList(), Actions: actions})
}

func (s *Server) statsGet(c echo.Context) error {
	return c.JSON(http.StatusOK, s.reg.Stats())
}

func (s *Server) examplesGet(c echo.Context) error {
	return c.JSON(http.StatusOK, s.examples)
}

// Identification of an identifier by /catalog/validate.
const (
	KindTopic   = "topic"
	KindCommand = "command"
	KindAction  = "action"
)

type validateResponse struct {
	Identifier string `json:"identifier"`
	Kind       string `json:"kind"`
	Command    string `json:"command,omitempty"`
}

func (s *Server) validateGet(c echo.Context) error {
	id := c.Param("identifier")
	logger := middleware.FromContext(c.Request().Context())

	switch {
	case s.reg.IsTopic(id):
		return c.JSON(http.StatusOK, validateResponse{Identifier: id, Kind: KindTopic})
	case s.reg.IsCommand(id):
		return c.JSON(http.StatusOK, validateResponse{Identifier: id, Kind: KindCommand})
	}
	command, err := s.reg.ResolveAction(id)
	if err != nil {
		logger.Debug("identifier not registered", "identifier", id)
		s.metrics.Reject(pubsub.OpValidate)
		return &topicmgr.TopicError{
			Type:    topicmgr.ErrorTopicNotFound,
			Topic:   id,
			Message: "not a registered topic, command or wire action: " + id,
		}
	}
	return c.JSON(http.StatusOK, validateResponse{Identifier: id, Kind: KindAction, Command: command})
}
