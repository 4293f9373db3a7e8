package catalog

import (
	"net/http"
	"time"

	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	engine  *Engine
	catalog *Catalog
	now     func() time.Time
}

func NewHandler(engine *Engine, catalog *Catalog) *Handler {
	return &Handler{
		engine:  engine,
		catalog: catalog,
		now:     time.Now,
	}
}

func (h *Handler) Query(ctx *gin.Context) {
	var req QueryRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid query parameters", err.Error())
		return
	}

	spec, err := req.toFilterSpec()
	if err != nil {
		response.FromError(ctx, err)
		return
	}

	res := h.engine.Query(h.catalog.Products(), spec, h.now().Month())
	response.Success(ctx, http.StatusOK, "Products fetched", toQueryResponse(res))
}

func (h *Handler) GetByID(ctx *gin.Context) {
	p, ok := h.catalog.Get(ctx.Param("productId"))
	if !ok {
		response.FromError(ctx, ErrProductNotFound)
		return
	}
	response.Success(ctx, http.StatusOK, "Product fetched", toProductResponse(p))
}

func (r QueryRequest) toFilterSpec() (FilterSpec, error) {
	spec := FilterSpec{
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Query:       r.Q,
		Brands:      r.Brands,
		Sort:        SortKey(r.Sort),
	}

	if r.AgeBand != "" {
		switch AgeBand(r.AgeBand) {
		case AgeBand0To6Months, AgeBand6To24Months, AgeBand2To4Years, AgeBand4To6Years, AgeBand6To14Years:
			spec.AgeBand = AgeBand(r.AgeBand)
		default:
			return FilterSpec{}, ErrInvalidAgeBand
		}
	}

	if r.Gender != "" {
		switch Gender(r.Gender) {
		case GenderGirls, GenderBoys:
			spec.Gender = Gender(r.Gender)
		default:
			return FilterSpec{}, ErrInvalidGender
		}
	}

	if r.Season != "" {
		switch Season(r.Season) {
		case SeasonSummer, SeasonWinter, SeasonAllSeason:
			s := Season(r.Season)
			spec.Season = &s
		default:
			return FilterSpec{}, ErrInvalidSeason
		}
	}

	if r.MinPrice != nil || r.MaxPrice != nil {
		bucket := PriceBucket{Min: 0, Max: 1<<62 - 1}
		if r.MinPrice != nil {
			bucket.Min = *r.MinPrice
		}
		if r.MaxPrice != nil {
			bucket.Max = *r.MaxPrice
		}
		spec.PriceBucket = &bucket
	}

	return spec, nil
}
