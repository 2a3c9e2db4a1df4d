package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListChefs returns chefs filtered by the optional term parameter, paged
// when pagination parameters are present. Passwords are never serialized.
// GET /chefs?term=&page=&pageSize=&sortBy=&sortDirection=
func (h *Handler) ListChefs(c *gin.Context) {
	ctx := c.Request.Context()
	term := c.Query("term")

	if opts, ok := pageOptionsFromQuery(c); ok {
		page := h.chefs.SearchPage(ctx, term, opts)
		for i := range page.Items {
			page.Items[i].Password = ""
		}
		c.JSON(http.StatusOK, page)
		return
	}

	chefs := h.chefs.Search(ctx, term)
	for i := range chefs {
		chefs[i].Password = ""
	}
	c.JSON(http.StatusOK, chefs)
}
