package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

// ListBooks godoc
// @Summary  List catalog with copy counts
// @Tags     books
// @Produce  json
// @Param    search        query string false "title or isbn"
// @Param    authorId      query int    false "author"
// @Param    genreId       query int    false "genre"
// @Param    availability  query string false "available | unavailable"
// @Param    page          query int    false "page"
// @Param    size          query int    false "size"
// @Success  200 {object} model.ListBooks
// @Router   /api/v1/books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	f := model.BookFilter{
		Search:       c.QueryParam("search"),
		Availability: model.Availability(c.QueryParam("availability")),
	}
	switch f.Availability {
	case model.AvailabilityAny, model.AvailabilityAvailable, model.AvailabilityUnavailable:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "availability is invalid")
	}
	var err error
	if v := c.QueryParam("authorId"); v != "" {
		if f.AuthorID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "authorId is invalid")
		}
	}
	if v := c.QueryParam("genreId"); v != "" {
		if f.GenreID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "genreId is invalid")
		}
	}
	if v := c.QueryParam("page"); v != "" {
		if f.Page, err = strconv.Atoi(v); err != nil || f.Page < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "page is invalid")
		}
	}
	if v := c.QueryParam("size"); v != "" {
		if f.Size, err = strconv.Atoi(v); err != nil || f.Size < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "size is invalid")
		}
	}

	books, err := h.svc.ListBooks(c.Request().Context(), f)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	book, err := h.svc.GetBook(c.Request().Context(), bookID)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.svc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	var req model.UpdateBookRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err = c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.svc.UpdateBook(c.Request().Context(), bookID, req)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	if err = h.svc.DeleteBook(c.Request().Context(), bookID); err != nil {
		return h.fail(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AddCopies(c echo.Context) error {
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	var req model.AddCopiesRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err = c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	copies, err := h.svc.AddCopies(c.Request().Context(), bookID, req.Count)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusCreated, copies)
}

func (h *Handler) ListCopies(c echo.Context) error {
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	copies, err := h.svc.ListCopies(c.Request().Context(), bookID)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, copies)
}

// SetCopyStatus godoc
// @Summary  Manually mark an idle copy Available, Damaged or Lost
// @Tags     copies
// @Accept   json
// @Produce  json
// @Param    copyId path int                        true "copy"
// @Param    body   body model.SetCopyStatusRequest true "status"
// @Success  200 {object} model.Copy
// @Failure  409 {object} model.Response
// @Router   /api/v1/copies/{copyId} [patch]
func (h *Handler) SetCopyStatus(c echo.Context) error {
	copyID, err := pathID(c, "copyId")
	if err != nil {
		return err
	}
	var req model.SetCopyStatusRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err = c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cp, err := h.svc.SetCopyStatus(c.Request().Context(), copyID, req.Status)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, cp)
}
