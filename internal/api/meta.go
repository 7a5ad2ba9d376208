package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartenum/internal/reference"
	"smartenum/internal/smartenum"
)

// ===== META HANDLERS =====

type metaCatalogListItem struct {
	Name       string `json:"name"`
	State      string `json:"state"`
	Members    int    `json:"members"`
	IgnoreCase bool   `json:"ignoreCase"`
	Error      string `json:"error,omitempty"`
}

type memberDTO struct {
	Name         string `json:"name"`
	Value        int    `json:"value"`
	Abbreviation string `json:"abbreviation"`
	IgnoreCase   bool   `json:"ignoreCase"`
	ValidFrom    string `json:"validFrom,omitempty"`
	ValidTo      string `json:"validTo,omitempty"`
}

func toDTO(m smartenum.Member) memberDTO {
	out := memberDTO{
		Name:         m.Name(),
		Value:        m.Value(),
		Abbreviation: m.Abbreviation(),
		IgnoreCase:   m.IgnoreCase(),
	}
	if it, ok := m.(reference.Item); ok {
		out.ValidFrom = it.ValidFrom
		out.ValidTo = it.ValidTo
	}
	return out
}

// GET /api/meta
func MetaListHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		names := svc.Enums.Names()
		out := make([]metaCatalogListItem, 0, len(names))
		for _, name := range names {
			v := svc.Enums[name]
			item := metaCatalogListItem{Name: name}
			members, err := v.Members()
			if err != nil {
				item.Error = err.Error()
			} else {
				item.Members = len(members)
				item.IgnoreCase = v.IgnoreCase()
			}
			item.State = v.State().String()
			out = append(out, item)
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /api/meta/:catalog
func MetaCatalogHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := lookupCatalog(c, svc)
		if !ok {
			return
		}
		members, err := v.Members()
		if err != nil {
			abortLookup(c, "", err)
			return
		}
		items := make([]memberDTO, 0, len(members))
		for _, m := range members {
			items = append(items, toDTO(m))
		}
		c.JSON(http.StatusOK, gin.H{
			"name":       v.Name(),
			"ignoreCase": v.IgnoreCase(),
			"items":      items,
		})
	}
}

func lookupCatalog(c *gin.Context, svc *Service) (smartenum.View, bool) {
	name := c.Param("catalog")
	v, ok := svc.Enums.Lookup(name)
	if !ok {
		abort(c, http.StatusNotFound, aerr(ErrCatalogNotFound, "catalog", "Catalog not found: "+name))
		return nil, false
	}
	return v, true
}
