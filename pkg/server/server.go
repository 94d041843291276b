// Package server exposes the sparse matrix core over HTTP:
// a named in-memory matrix store plus arithmetic endpoints.
// Matrix bodies use the text format of the sparse package codec.
package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mohae/deepcopy"
	"github.com/rs/zerolog"

	"github.com/intmat/intmat/pkg/sparse"
	"github.com/intmat/intmat/pkg/util"
)

type Server struct {
	logger   zerolog.Logger
	matrices NamedMatrices
}

func New(logger zerolog.Logger) *Server {
	return &Server{logger: logger}
}

// Register mounts all endpoints under /v1 on the given echo instance.
func (s *Server) Register(e *echo.Echo) {
	v1 := e.Group("/v1")
	v1.PUT("/matrices/:id", s.putMatrix)
	v1.GET("/matrices/:id", s.getMatrix)
	v1.DELETE("/matrices/:id", s.deleteMatrix)
	v1.GET("/matrices/:id/element", s.getElement)
	v1.PUT("/matrices/:id/element", s.setElement)
	v1.POST("/matrices/:id/add/:other", s.binOp((*sparse.Matrix).Add))
	v1.POST("/matrices/:id/subtract/:other", s.binOp((*sparse.Matrix).Sub))
	v1.POST("/matrices/:id/multiply/:other", s.binOp((*sparse.Matrix).Mul))
}

// httpError maps core errors onto HTTP statuses: bad input is the
// caller's fault (400/404), everything else is ours (500).
func httpError(err error) error {
	var (
		formatErr   sparse.FormatError
		boundsErr   util.IndexOutOfBoundsError
		notFoundErr NotFoundError
	)
	switch {
	case errors.As(err, &notFoundErr):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.As(err, &formatErr),
		errors.As(err, &boundsErr),
		errors.Is(err, sparse.ErrDimensionMismatch),
		errors.Is(err, sparse.ErrInvalidDim):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}

func (s *Server) putMatrix(c echo.Context) error {
	id := c.Param("id")
	m, err := sparse.ParseMatrix(c.Request().Body)
	if err != nil {
		return httpError(err)
	}
	created := s.matrices.Set(id, m)
	s.logger.Debug().
		Str("id", id).
		Int("nnz", m.NNZ()).
		Bool("created", created).
		Msg("stored matrix")
	if created {
		return c.NoContent(http.StatusCreated)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) getMatrix(c echo.Context) error {
	sm, err := s.matrices.Get(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	// Copy under the lock, serialize outside it.
	var snapshot *sparse.Matrix
	_ = sm.LockAndRun(func(m *sparse.Matrix) error {
		snapshot = deepcopy.Copy(m).(*sparse.Matrix)
		return nil
	})
	return c.String(http.StatusOK, snapshot.String())
}

func (s *Server) deleteMatrix(c echo.Context) error {
	if err := s.matrices.Remove(c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) getElement(c echo.Context) error {
	sm, err := s.matrices.Get(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	row, err := strconv.Atoi(c.QueryParam("row"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			"invalid row query parameter")
	}
	col, err := strconv.Atoi(c.QueryParam("col"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			"invalid col query parameter")
	}
	var value int64
	err = sm.LockAndRun(func(m *sparse.Matrix) error {
		var getErr error
		value, getErr = m.Get(row, col)
		return getErr
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, elementBody{Row: row, Col: col,
		Value: value})
}

type elementBody struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Value int64 `json:"value"`
}

func (s *Server) setElement(c echo.Context) error {
	sm, err := s.matrices.Get(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	var body elementBody
	if err := c.Bind(&body); err != nil {
		return err
	}
	err = sm.LockAndRun(func(m *sparse.Matrix) error {
		return m.Set(body.Row, body.Col, body.Value)
	})
	if err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) binOp(
	op func(a, b *sparse.Matrix) (*sparse.Matrix, error),
) echo.HandlerFunc {
	return func(c echo.Context) error {
		var result *sparse.Matrix
		err := s.matrices.WithPair(c.Param("id"), c.Param("other"),
			func(a, b *sparse.Matrix) error {
				var opErr error
				result, opErr = op(a, b)
				return opErr
			})
		if err != nil {
			return httpError(err)
		}
		return c.String(http.StatusOK, result.String())
	}
}
