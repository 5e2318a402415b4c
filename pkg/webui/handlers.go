package webui

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battrack/pkg/brand"
	"github.com/charlie0129/battrack/pkg/store"
)

// activeBrand resolves the currently selected brand. A missing or stale
// setting falls back to the configured default, then the registry default.
func (s *Server) activeBrand() (string, brand.Brand) {
	name, err := s.store.GetSetting("brand", s.conf.DefaultBrand())
	if err != nil {
		logrus.Errorf("failed to read brand setting: %v", err)
		name = s.conf.DefaultBrand()
	}
	if !brand.IsValid(name) {
		name = brand.DefaultName
	}
	return name, brand.GetOrDefault(name)
}

// render wraps c.HTML with the fields every page expects: the active brand
// theme, the status list, and any queued notices.
func (s *Server) render(c *gin.Context, code int, page string, data gin.H) {
	name, b := s.activeBrand()
	h := gin.H{
		"BrandName": name,
		"Brand":     b,
		"Statuses":  store.ValidStatuses,
		"Notices":   s.notices(c),
	}
	for k, v := range data {
		h[k] = v
	}
	c.HTML(code, page, h)
}

func (s *Server) serverError(c *gin.Context, err error) {
	_ = c.AbortWithError(http.StatusInternalServerError, err)
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// batteryForm carries raw submitted values so a failed validation can
// re-render the form with everything the user typed.
type batteryForm struct {
	Label         string
	Voltage       string
	AhRating      string
	IsOEM         string
	Status        string
	StatusChanged string
	PurchaseDate  string
	Price         string
	Notes         string
}

func batteryFormFromRequest(c *gin.Context) batteryForm {
	return batteryForm{
		Label:         strings.TrimSpace(c.PostForm("label")),
		Voltage:       c.PostForm("voltage"),
		AhRating:      c.PostForm("ah_rating"),
		IsOEM:         c.PostForm("is_oem"),
		Status:        c.PostForm("status"),
		StatusChanged: c.PostForm("status_changed"),
		PurchaseDate:  c.PostForm("purchase_date"),
		Price:         c.PostForm("price"),
		Notes:         strings.TrimSpace(c.PostForm("notes")),
	}
}

func formFromBattery(b *store.Battery) batteryForm {
	f := batteryForm{
		Label:         b.Label,
		Voltage:       strconv.Itoa(b.Voltage),
		AhRating:      strconv.FormatFloat(b.AhRating, 'f', -1, 64),
		Status:        b.Status,
		StatusChanged: b.StatusChanged,
	}
	if b.IsOEM {
		f.IsOEM = "1"
	}
	if b.PurchaseDate != nil {
		f.PurchaseDate = *b.PurchaseDate
	}
	if b.Price != nil {
		f.Price = strconv.FormatFloat(*b.Price, 'f', -1, 64)
	}
	if b.Notes != nil {
		f.Notes = *b.Notes
	}
	return f
}

// parseBattery validates the submitted form and builds the battery row.
// The second return value is a user-facing message, empty on success.
// Check order matters: presence, then Ah membership, then status.
func parseBattery(f batteryForm) (*store.Battery, string) {
	if f.Label == "" || f.Voltage == "" || f.AhRating == "" {
		return nil, "Label, voltage, and Ah rating are required."
	}

	ah, err := strconv.ParseFloat(f.AhRating, 64)
	if err != nil || !store.IsValidAhRating(ah) {
		return nil, "Invalid Ah rating."
	}

	if !store.IsValidStatus(f.Status) {
		return nil, "Invalid status."
	}

	voltage, err := strconv.Atoi(f.Voltage)
	if err != nil {
		return nil, "Invalid voltage."
	}

	b := &store.Battery{
		Label:         f.Label,
		Voltage:       voltage,
		AhRating:      ah,
		IsOEM:         f.IsOEM == "1",
		Status:        f.Status,
		StatusChanged: f.StatusChanged,
	}
	if f.PurchaseDate != "" {
		b.PurchaseDate = &f.PurchaseDate
	}
	if f.Price != "" {
		price, err := strconv.ParseFloat(f.Price, 64)
		if err != nil {
			return nil, "Invalid price."
		}
		b.Price = &price
	}
	if f.Notes != "" {
		b.Notes = &f.Notes
	}
	return b, ""
}

func (s *Server) renderBatteryForm(c *gin.Context, f batteryForm, action string, voltages []int, title string) {
	s.render(c, http.StatusOK, "form.tmpl", gin.H{
		"Title":     title,
		"Form":      f,
		"Action":    action,
		"Voltages":  voltages,
		"AhRatings": store.ValidAhRatings,
	})
}

// batteryRow is the display projection of a battery for the index table.
type batteryRow struct {
	ID            uint
	Label         string
	Voltage       int
	AhRating      float64
	IsOEM         bool
	Status        string
	StatusChanged string
	PurchaseDate  string
	Price         string
	Notes         string
}

func rowFromBattery(b *store.Battery) batteryRow {
	r := batteryRow{
		ID:            b.ID,
		Label:         b.Label,
		Voltage:       b.Voltage,
		AhRating:      b.AhRating,
		IsOEM:         b.IsOEM,
		Status:        b.Status,
		StatusChanged: b.StatusChanged,
	}
	if b.PurchaseDate != nil {
		r.PurchaseDate = *b.PurchaseDate
	}
	if b.Price != nil {
		r.Price = fmt.Sprintf("$%.2f", *b.Price)
	}
	if b.Notes != nil {
		r.Notes = *b.Notes
	}
	return r
}

func (s *Server) index(c *gin.Context) {
	statusFilter := c.Query("status")
	if !store.IsValidStatus(statusFilter) {
		// Unknown filters are ignored, not errors.
		statusFilter = ""
	}

	batteries, err := s.store.ListBatteries(statusFilter)
	if err != nil {
		s.serverError(c, err)
		return
	}

	// Stats always cover the whole fleet, even when a filter is active.
	all := batteries
	if statusFilter != "" {
		all, err = s.store.ListBatteries("")
		if err != nil {
			s.serverError(c, err)
			return
		}
	}

	rows := make([]batteryRow, 0, len(batteries))
	for i := range batteries {
		rows = append(rows, rowFromBattery(&batteries[i]))
	}

	s.render(c, http.StatusOK, "index.tmpl", gin.H{
		"Title":              "Inventory",
		"Batteries":          rows,
		"Stats":              store.Stats(all),
		"StatusFilter":       statusFilter,
		"FilteredCount":      len(batteries),
		"FilteredInvestment": store.Investment(batteries),
	})
}

func (s *Server) addForm(c *gin.Context) {
	_, br := s.activeBrand()
	s.renderBatteryForm(c, batteryForm{IsOEM: "1", Status: store.StatusNew}, "/add", br.Voltages, "Add battery")
}

func (s *Server) add(c *gin.Context) {
	_, br := s.activeBrand()

	f := batteryFormFromRequest(c)
	if f.Status == "" {
		f.Status = store.StatusNew
	}
	if f.StatusChanged == "" {
		f.StatusChanged = time.Now().Format(isoDate)
	}

	b, msg := parseBattery(f)
	if msg != "" {
		s.flash(c, noticeError, msg)
		s.renderBatteryForm(c, f, "/add", br.Voltages, "Add battery")
		return
	}

	// Seed the history log with the creation event, after whatever the
	// submitter typed into the notes field.
	notes := ""
	if b.Notes != nil {
		notes = *b.Notes
	}
	notes = AppendHistoryAt(notes, "Added - "+b.Status, time.Now())
	b.Notes = &notes

	if err := s.store.CreateBattery(b); err != nil {
		s.serverError(c, err)
		return
	}

	s.flash(c, noticeSuccess, fmt.Sprintf("Battery %s added.", b.Label))
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) editForm(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	var b *store.Battery
	var err error
	if ok {
		b, err = s.store.GetBattery(id)
	}
	if !ok || errors.Is(err, store.ErrBatteryNotFound) {
		s.flash(c, noticeError, "Battery not found.")
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}

	_, br := s.activeBrand()
	s.renderBatteryForm(c, formFromBattery(b), fmt.Sprintf("/edit/%d", b.ID),
		brand.VoltagesFor(br, b.Voltage), "Edit battery")
}

func (s *Server) edit(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	var old *store.Battery
	var err error
	if ok {
		old, err = s.store.GetBattery(id)
	}
	if !ok || errors.Is(err, store.ErrBatteryNotFound) {
		s.flash(c, noticeError, "Battery not found.")
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}

	f := batteryFormFromRequest(c)
	if f.Status == "" {
		f.Status = store.StatusInUse
	}

	b, msg := parseBattery(f)
	if msg != "" {
		_, br := s.activeBrand()
		s.flash(c, noticeError, msg)
		s.renderBatteryForm(c, f, fmt.Sprintf("/edit/%d", old.ID),
			brand.VoltagesFor(br, old.Voltage), "Edit battery")
		return
	}

	if old.Status != b.Status {
		// A status transition stamps the change date and logs a history
		// line after whatever notes were submitted with this edit.
		b.StatusChanged = time.Now().Format(isoDate)
		notes := ""
		if b.Notes != nil {
			notes = *b.Notes
		}
		notes = AppendHistoryAt(notes, b.Status, time.Now())
		b.Notes = &notes
	} else if b.StatusChanged == "" {
		b.StatusChanged = old.StatusChanged
	}

	b.ID = old.ID
	b.CreatedAt = old.CreatedAt

	if err := s.store.UpdateBattery(b); err != nil {
		s.serverError(c, err)
		return
	}

	s.flash(c, noticeSuccess, fmt.Sprintf("Battery %s updated.", b.Label))
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) remove(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	var b *store.Battery
	var err error
	if ok {
		b, err = s.store.GetBattery(id)
	}
	if !ok || errors.Is(err, store.ErrBatteryNotFound) {
		// Deleting a nonexistent battery is a no-op with its own notice.
		s.flash(c, noticeError, "Battery not found.")
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}

	if err := s.store.DeleteBattery(b.ID); err != nil && !errors.Is(err, store.ErrBatteryNotFound) {
		s.serverError(c, err)
		return
	}

	s.flash(c, noticeSuccess, fmt.Sprintf("Battery %s deleted.", b.Label))
	c.Redirect(http.StatusFound, "/")
}

type brandChoice struct {
	Name  string
	Brand brand.Brand
}

func (s *Server) settingsForm(c *gin.Context) {
	names := brand.Names()
	choices := make([]brandChoice, 0, len(names))
	for _, name := range names {
		b, _ := brand.Get(name)
		choices = append(choices, brandChoice{Name: name, Brand: b})
	}
	s.render(c, http.StatusOK, "settings.tmpl", gin.H{
		"Title":  "Settings",
		"Brands": choices,
	})
}

func (s *Server) updateSettings(c *gin.Context) {
	name := c.PostForm("brand")
	if brand.IsValid(name) {
		if err := s.store.SetSetting("brand", name); err != nil {
			s.serverError(c, err)
			return
		}
		s.flash(c, noticeSuccess, fmt.Sprintf("Brand set to %s.", name))
	} else {
		s.flash(c, noticeError, "Invalid brand.")
	}
	c.Redirect(http.StatusFound, "/settings")
}

func (s *Server) feedbackForm(c *gin.Context) {
	s.render(c, http.StatusOK, "feedback.tmpl", gin.H{"Title": "Feedback"})
}

func (s *Server) submitFeedback(c *gin.Context) {
	message := strings.TrimSpace(c.PostForm("message"))
	if message == "" {
		s.flash(c, noticeError, "Feedback message cannot be blank.")
		s.render(c, http.StatusOK, "feedback.tmpl", gin.H{"Title": "Feedback"})
		return
	}

	if err := s.store.CreateFeedback(&store.Feedback{Message: message}); err != nil {
		s.serverError(c, err)
		return
	}

	s.flash(c, noticeSuccess, "Thanks for your feedback!")
	c.Redirect(http.StatusFound, "/")
}
