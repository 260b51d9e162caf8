package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/stacygol/bloglist/internal/model"
	"github.com/stacygol/bloglist/internal/server"
	"github.com/stacygol/bloglist/internal/service"
)

type PersonHandler struct {
	Handler
	persons *service.PersonService
}

func NewPersonHandler(s *server.Server, persons *service.PersonService) *PersonHandler {
	return &PersonHandler{
		Handler: NewHandler(s),
		persons: persons,
	}
}

func (h *PersonHandler) ListPersons(c echo.Context, _ *model.NoParams) ([]model.Person, error) {
	return h.persons.List(c.Request().Context())
}

func (h *PersonHandler) GetPerson(c echo.Context, req *model.GetPersonRequest) (*model.Person, error) {
	return h.persons.Get(c.Request().Context(), req.ID())
}

func (h *PersonHandler) CreatePerson(c echo.Context, req *model.CreatePersonRequest) (*model.Person, error) {
	return h.persons.Create(c.Request().Context(), req)
}

func (h *PersonHandler) UpdatePerson(c echo.Context, req *model.UpdatePersonRequest) (*model.Person, error) {
	return h.persons.Update(c.Request().Context(), req)
}

func (h *PersonHandler) DeletePerson(c echo.Context, req *model.DeletePersonRequest) error {
	return h.persons.Delete(c.Request().Context(), req.ID())
}

// Info answers GET /info with the entry count and the current time.
func (h *PersonHandler) Info(c echo.Context, _ *model.NoParams) (model.PhonebookInfo, error) {
	return h.persons.Info(c.Request().Context())
}
