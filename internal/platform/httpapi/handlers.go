package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/valleyseer/internal/calendar"
	"github.com/vovakirdan/valleyseer/internal/catalog"
	"github.com/vovakirdan/valleyseer/internal/config"
	"github.com/vovakirdan/valleyseer/internal/registry"
	"github.com/vovakirdan/valleyseer/internal/stock"
)

// stockParams are the query parameters of the stock endpoint. Every
// configuration field overrides the server defaults and the named profile.
type stockParams struct {
	Start   *int32 `form:"start"`
	Filter  string `form:"filter"`
	Profile string `form:"profile"`

	Platform      *string `form:"platform"`
	Seed          *int32  `form:"seed"`
	Date          *int32  `form:"date"`
	GeodesCracked *uint16 `form:"geodes_cracked"`
	MineLevel     *uint8  `form:"mine_level"`
	QisCrop       *bool   `form:"qis_crop"`
	GoldenHelmet  *bool   `form:"golden_helmet"`
}

func (p stockParams) file() config.File {
	return config.File{
		Platform:      p.Platform,
		Seed:          p.Seed,
		Date:          p.Date,
		GeodesCracked: p.GeodesCracked,
		MineLevel:     p.MineLevel,
		QisCrop:       p.QisCrop,
		GoldenHelmet:  p.GoldenHelmet,
	}
}

// StockResponse is the body of a successful stock request.
type StockResponse struct {
	Vendor  registry.VendorInfo `json:"vendor"`
	Start   int32               `json:"start"`
	Filter  string              `json:"filter,omitempty"`
	Notices []string            `json:"notices"`
	Groups  []stock.Group       `json:"groups"`
}

// DateResponse describes one calendar date.
type DateResponse struct {
	Index   int32  `json:"index"`
	Weekday string `json:"weekday"`
	Day     uint8  `json:"day"`
	Season  string `json:"season"`
	Year    uint32 `json:"year"`
	Label   string `json:"label"`
}

// ProfileResponse is a saved profile without storage details.
type ProfileResponse struct {
	Name      string      `json:"name"`
	Config    config.File `json:"config"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func fail(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"catalog": s.config.Catalog.Len(),
	})
}

func (s *Server) listVendors(c *gin.Context) {
	c.JSON(http.StatusOK, registry.List())
}

func (s *Server) getVendor(c *gin.Context) {
	v, err := registry.Get(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, err)
		return
	}
	c.JSON(http.StatusOK, registry.Info(v))
}

func (s *Server) getStock(c *gin.Context) {
	v, err := registry.Get(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, err)
		return
	}

	var params stockParams
	if err := c.ShouldBindQuery(&params); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	cfg, status, err := s.resolve(params)
	if err != nil {
		fail(c, status, err)
		return
	}

	filter, err := stock.NewFilter(params.Filter)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	start := registry.DefaultStart(v, cfg)
	if params.Start != nil {
		start = *params.Start
	}
	if err := registry.CheckStart(v.Kind(), start); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	groups, err := v.Stock(s.config.Catalog, stock.Query{Config: cfg, Start: start, Filter: filter})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, catalog.ErrMissing) {
			// The catalog does not match the game data the vendor expects.
			status = http.StatusUnprocessableEntity
		}
		s.logger.Error("stock computation failed", "vendor", v.ID(), "error", err)
		fail(c, status, err)
		return
	}
	if groups == nil {
		groups = []stock.Group{}
	}

	c.JSON(http.StatusOK, StockResponse{
		Vendor:  registry.Info(v),
		Start:   start,
		Filter:  filter.String(),
		Notices: v.Notices(cfg),
		Groups:  groups,
	})
}

// resolve layers the server defaults, the named profile and the query
// parameters. The returned status is only meaningful with an error.
func (s *Server) resolve(p stockParams) (config.Configuration, int, error) {
	file := s.config.Defaults
	if p.Profile != "" {
		if s.config.Store == nil {
			return config.Configuration{}, http.StatusNotFound, errors.New("profiles are not available")
		}
		prof, err := s.config.Store.Profile(p.Profile)
		if err != nil {
			return config.Configuration{}, http.StatusInternalServerError, err
		}
		if prof == nil {
			return config.Configuration{}, http.StatusNotFound, errors.New("unknown profile " + p.Profile)
		}
		file = file.Merge(prof.File)
	}

	cfg, err := file.Merge(p.file()).Resolve()
	if err != nil {
		return config.Configuration{}, http.StatusBadRequest, err
	}
	return cfg, 0, nil
}

func (s *Server) getDate(c *gin.Context) {
	date, err := calendar.Parse(c.Param("date"))
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, DateResponse{
		Index:   date,
		Weekday: calendar.WeekdayName(date),
		Day:     calendar.DayNumber(date),
		Season:  calendar.SeasonName(date),
		Year:    calendar.YearNumber(date),
		Label:   calendar.Format(date),
	})
}

func (s *Server) listProfiles(c *gin.Context) {
	if s.config.Store == nil {
		c.JSON(http.StatusOK, []ProfileResponse{})
		return
	}
	profiles, err := s.config.Store.Profiles()
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	out := make([]ProfileResponse, len(profiles))
	for i, p := range profiles {
		out[i] = ProfileResponse{Name: p.Name, Config: p.File, UpdatedAt: p.UpdatedAt}
	}
	c.JSON(http.StatusOK, out)
}
