package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/steaphangreene/acidmud-sub001/internal/engine"
	"github.com/steaphangreene/acidmud-sub001/internal/storage"
	"github.com/steaphangreene/acidmud-sub001/internal/world"
)

// WorldStats: ответ /api/world/stats.
type WorldStats struct {
	Tick        uint64 `json:"tick"`
	Nodes       int    `json:"nodes"`
	Roots       int    `json:"roots"`
	TrashItems  int    `json:"trash_items"`
	PendingJobs int    `json:"pending_jobs"`
}

// TouchingRecord: узел, у которого есть связь, указывающая на запрошенный.
type TouchingRecord struct {
	ID    uint64   `json:"id"`
	Short string   `json:"short,omitempty"`
	Roles []string `json:"roles"`
}

var errNodeNotFound = errors.New("node not found")

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

func (s *Server) handleServer(c *gin.Context) {
	c.JSON(http.StatusOK, GenericResponse{Success: true, Data: s.process.snapshot()})
}

func (s *Server) handleWorldStats(c *gin.Context) {
	var stats WorldStats
	err := s.do(c, func(w *world.World) error {
		stats = WorldStats{
			Tick:        s.loop.Now(),
			Nodes:       w.Len(),
			Roots:       len(w.Roots()),
			TrashItems:  w.Get(w.Trash()).NumChildren(),
			PendingJobs: s.loop.Scheduler().Pending(),
		}
		return nil
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, GenericResponse{Success: true, Data: stats})
}

func (s *Server) handleNode(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var rec storage.NodeRecord
	err := s.do(c, func(w *world.World) error {
		st, found := w.State(id)
		if !found {
			return errNodeNotFound
		}
		rec = storage.Record(st)
		return nil
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, GenericResponse{Success: true, Data: rec})
}

func (s *Server) handleTouching(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var out []TouchingRecord
	err := s.do(c, func(w *world.World) error {
		if !w.Exists(id) {
			return errNodeNotFound
		}
		out = make([]TouchingRecord, 0)
		for _, src := range w.Touching(id) {
			n := w.Get(src)
			rec := TouchingRecord{ID: uint64(src), Short: n.Short()}
			for _, e := range n.Acts() {
				if e.Target == id {
					rec.Roles = append(rec.Roles, e.Act.String())
				}
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, GenericResponse{Success: true, Data: out})
}

// do выполняет fn на потоке цикла с таймаутом запроса.
func (s *Server) do(c *gin.Context, fn func(*world.World) error) error {
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()
	return s.loop.Do(ctx, fn)
}

func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errNodeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, engine.ErrStopped):
		status = http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	default:
		s.log.Error("❌ Ошибка запроса %s: %v", c.Request.URL.Path, err)
	}
	c.JSON(status, GenericResponse{Success: false, Message: err.Error()})
}

func parseID(c *gin.Context) (world.NodeID, bool) {
	raw, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || raw == 0 {
		c.JSON(http.StatusBadRequest, GenericResponse{Success: false, Message: "invalid node id"})
		return 0, false
	}
	return world.NodeID(raw), true
}
