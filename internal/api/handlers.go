package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"smartenum/internal/smartenum"
)

// parseIgnoreCase читает ?ignoreCase=; has=false, если параметра нет.
func parseIgnoreCase(c *gin.Context) (value, has bool, err error) {
	raw, has := c.GetQuery("ignoreCase")
	if !has {
		return false, false, nil
	}
	value, err = strconv.ParseBool(raw)
	return value, true, err
}

// respondTry отвечает на поиск без ошибки: ok=false даёт 404,
// если только семейство не сломано.
func respondTry(c *gin.Context, v smartenum.View, field, key string, m smartenum.Member, ok bool) {
	if ok {
		c.JSON(http.StatusOK, toDTO(m))
		return
	}
	if err := v.Init(); err != nil {
		abortLookup(c, field, err)
		return
	}
	abort(c, http.StatusNotFound, aerr(ErrNotFound, field, fmt.Sprintf("%s %q not found in %s", field, key, v.Name())))
}

// GET /api/enums/:catalog/abbr/:abbr[?ignoreCase=bool]
func AbbreviationHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := lookupCatalog(c, svc)
		if !ok {
			return
		}
		abbr := c.Param("abbr")

		ignoreCase, has, err := parseIgnoreCase(c)
		if err != nil {
			abort(c, http.StatusBadRequest, aerr(ErrBadRequest, "ignoreCase", "ignoreCase must be a boolean"))
			return
		}
		// явный режим — поиск без ошибки, иначе режим семейства
		if has {
			m, found := v.TryFromAbbreviation(abbr, ignoreCase)
			respondTry(c, v, "abbreviation", abbr, m, found)
			return
		}
		m, err := v.FromAbbreviation(abbr)
		if err != nil {
			abortLookup(c, "abbreviation", err)
			return
		}
		c.JSON(http.StatusOK, toDTO(m))
	}
}

// GET /api/enums/:catalog/name/:name[?ignoreCase=bool]
func NameHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := lookupCatalog(c, svc)
		if !ok {
			return
		}
		name := c.Param("name")
		ignoreCase, _, err := parseIgnoreCase(c)
		if err != nil {
			abort(c, http.StatusBadRequest, aerr(ErrBadRequest, "ignoreCase", "ignoreCase must be a boolean"))
			return
		}
		m, found := v.TryFromName(name, ignoreCase)
		respondTry(c, v, "name", name, m, found)
	}
}

// GET /api/enums/:catalog/value/:value
func ValueHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := lookupCatalog(c, svc)
		if !ok {
			return
		}
		value, err := strconv.Atoi(c.Param("value"))
		if err != nil {
			abort(c, http.StatusBadRequest, aerr(ErrBadRequest, "value", "value must be an integer"))
			return
		}
		m, err := v.FromValue(value)
		if err != nil {
			abortLookup(c, "value", err)
			return
		}
		c.JSON(http.StatusOK, toDTO(m))
	}
}
