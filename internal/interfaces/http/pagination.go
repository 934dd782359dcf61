package http

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

// parsePage lee ?page y ?page_size con defaults y topes.
func parsePage(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}
	page.DefaultPage()
	return page
}

// pageLinks construye los enlaces next/previous absolutos para el envoltorio
// de paginación, preservando el resto de query params de la petición
// (ej. category_id). nil en los bordes.
func pageLinks(c *fiber.Ctx, page dto.PageRequest, count int) (next, previous *string) {
	base := c.BaseURL() + c.Path()
	params := url.Values{}
	for k, v := range c.Queries() {
		if k != "page" {
			params.Set(k, v)
		}
	}
	link := func(n int) *string {
		q := url.Values{}
		for k, vs := range params {
			q[k] = append([]string(nil), vs...)
		}
		q.Set("page", strconv.Itoa(n))
		s := base + "?" + q.Encode()
		return &s
	}
	if page.Page*page.PageSize < count {
		next = link(page.Page + 1)
	}
	if page.Page > 1 {
		previous = link(page.Page - 1)
	}
	return next, previous
}
