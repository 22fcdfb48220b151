package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"acadcalc/internal/academic"
	"acadcalc/internal/contact"
	"acadcalc/internal/logger"
	"acadcalc/internal/report"
)

// Form defaults; result URLs only carry params that differ from these.
const (
	webDefaultMode     = report.ToAcademic
	webDefaultHours    = "1"
	webDefaultMinutes  = "0"
	webDefaultAcademic = "2"
	webDefaultGroup    = 3
)

type GroupOption struct {
	Index    int
	Group    academic.AgeGroup
	Selected bool
}

type PageData struct {
	Mode     string
	Hours    string
	Minutes  string
	Academic string
	Group    int

	Groups   []GroupOption
	Selected academic.AgeGroup
	Levels   []academic.ProgramLevel

	Error  string
	Result *report.Result

	ContactName  string
	ContactEmail string
	ContactBody  string
	ContactError string
	Ack          *contact.Ack

	Version string

	// Meta description for link previews when Result is set.
	ShareDescription string
}

func (s *Server) newPage(mode report.Mode, hours, minutes, acad string, group int) PageData {
	if group < 0 || group >= s.table.Len() {
		group = defaultGroup(s.table)
	}

	data := PageData{
		Mode:     string(mode),
		Hours:    hours,
		Minutes:  minutes,
		Academic: acad,
		Group:    group,
		Version:  s.version,
	}
	for i, g := range s.table.Groups() {
		data.Groups = append(data.Groups, GroupOption{Index: i, Group: g, Selected: i == group})
		if i == group {
			data.Selected = g
		}
	}
	// The overview lists the named levels only; tier 0 is never displayed.
	for _, l := range academic.Levels() {
		if l.Min >= report.ShowLevelFrom {
			data.Levels = append(data.Levels, l)
		}
	}
	return data
}

func defaultGroup(t *academic.Table) int {
	if webDefaultGroup < t.Len() {
		return webDefaultGroup
	}
	return 0
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	mode, err := report.ParseMode(q.Get("mode"))
	if err != nil {
		mode = webDefaultMode
	}
	group := defaultGroup(s.table)
	if v := strings.TrimSpace(q.Get("group")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			group = n
		}
	}

	data := s.newPage(mode,
		orDefault(q.Get("hours"), webDefaultHours),
		orDefault(q.Get("minutes"), webDefaultMinutes),
		orDefault(q.Get("academic"), webDefaultAcademic),
		group,
	)

	in, err := parseInput(mode, data.Hours, data.Minutes, data.Academic, data.Group)
	if err != nil {
		data.Error = err.Error()
	} else {
		res, err := report.Build(s.table, report.Clamp(in))
		if err != nil {
			data.Error = err.Error()
		} else {
			data.Result = res
			data.ShareDescription = report.Describe(res)
		}
	}

	s.render(w, r, http.StatusOK, data)
}

func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	mode, err := report.ParseMode(r.FormValue("mode"))
	if err != nil {
		mode = webDefaultMode
	}
	hours := orDefault(r.FormValue("hours"), "0")
	minutes := orDefault(r.FormValue("minutes"), "0")
	acad := orDefault(r.FormValue("academic"), "0")
	group, err := strconv.Atoi(strings.TrimSpace(r.FormValue("group")))
	if err != nil {
		group = defaultGroup(s.table)
	}

	in, err := parseInput(mode, hours, minutes, acad, group)
	if err != nil {
		data := s.newPage(mode, hours, minutes, acad, group)
		data.Error = err.Error()
		s.render(w, r, http.StatusOK, data)
		return
	}
	in = report.Clamp(in)

	if _, err := report.Build(s.table, in); err != nil {
		data := s.newPage(mode, hours, minutes, acad, group)
		data.Error = err.Error()
		s.render(w, r, http.StatusOK, data)
		return
	}

	http.Redirect(w, r, buildCalcURL(in), http.StatusFound)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	msg := contact.Message{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
		Body:  r.FormValue("message"),
	}

	data := s.newPage(webDefaultMode, webDefaultHours, webDefaultMinutes, webDefaultAcademic, defaultGroup(s.table))
	if res, err := report.Build(s.table, report.Input{Mode: webDefaultMode, Hours: 1, Group: data.Group}); err == nil {
		data.Result = res
	}

	ack, err := s.desk.Submit(r.Context(), msg)
	if err != nil {
		data.ContactName = msg.Name
		data.ContactEmail = msg.Email
		data.ContactBody = msg.Body
		data.ContactError = err.Error()

		status := http.StatusBadRequest
		if errors.Is(err, contact.ErrRateLimited) {
			status = http.StatusTooManyRequests
		}
		s.render(w, r, status, data)
		return
	}

	data.Ack = &ack
	s.render(w, r, http.StatusOK, data)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tpl.Execute(w, data); err != nil {
		logger.Get(r.Context()).Error().Err(err).Msg("Failed to render page")
	}
}

func parseInput(mode report.Mode, hours, minutes, acad string, group int) (report.Input, error) {
	in := report.Input{Mode: mode, Group: group}
	var err error
	if mode == report.ToRegular {
		if in.Academic, err = parseFloat(acad); err != nil {
			return in, errors.New("academic hours must be a number (e.g. 2 or 1.5)")
		}
		return in, nil
	}
	if in.Hours, err = parseFloat(hours); err != nil {
		return in, errors.New("hours must be a number")
	}
	if in.Minutes, err = parseFloat(minutes); err != nil {
		return in, errors.New("minutes must be a number")
	}
	return in, nil
}

// buildCalcURL returns "/?..." with only the params that differ from the defaults.
func buildCalcURL(in report.Input) string {
	v := url.Values{}
	if in.Mode != webDefaultMode {
		v.Set("mode", string(in.Mode))
	}
	if in.Mode == report.ToRegular {
		if a := report.FormatNumber(in.Academic); a != webDefaultAcademic {
			v.Set("academic", a)
		}
	} else {
		if h := report.FormatNumber(in.Hours); h != webDefaultHours {
			v.Set("hours", h)
		}
		if m := report.FormatNumber(in.Minutes); m != webDefaultMinutes {
			v.Set("minutes", m)
		}
	}
	if in.Group != webDefaultGroup {
		v.Set("group", strconv.Itoa(in.Group))
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

func orDefault(val, def string) string {
	if strings.TrimSpace(val) == "" {
		return def
	}
	return strings.TrimSpace(val)
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}
