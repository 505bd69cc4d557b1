// Package route maps between route configurations and RTZ route
// exchange documents (IEC PAS 61174).
//
// The same element tree serves RTZ 1.0 and RTZ 1.1; vessel and validity
// period details are only present in 1.1 configurations.
package route

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/antarctica/mdlib/pkg/dates"
	"github.com/antarctica/mdlib/pkg/element"
	"github.com/antarctica/mdlib/pkg/mdlib"
)

// Config is a route configuration.
type Config struct {
	Schema         string          `json:"$schema"`
	RouteName      string          `json:"route_name"`
	RouteAuthor    string          `json:"route_author,omitempty"`
	RouteStatus    string          `json:"route_status,omitempty"`
	Vessel         *Vessel         `json:"vessel,omitempty"`
	ValidityPeriod *ValidityPeriod `json:"validity_period,omitempty"`
	Waypoints      []Waypoint      `json:"waypoints"`
}

type Vessel struct {
	Name   string `json:"name,omitempty"`
	MMSI   *int   `json:"mmsi,omitempty"`
	IMO    *int   `json:"imo,omitempty"`
	Voyage string `json:"voyage,omitempty"`
}

type ValidityPeriod struct {
	Start *dates.Date `json:"start,omitempty"`
	End   *dates.Date `json:"end,omitempty"`
}

type Waypoint struct {
	ID       int      `json:"id"`
	Name     string   `json:"name,omitempty"`
	Radius   *float64 `json:"radius,omitempty"`
	Revision *int     `json:"revision,omitempty"`
	Position Position `json:"position"`
	Leg      *Leg     `json:"leg,omitempty"`
}

type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Leg describes the route leg arriving at a waypoint.
type Leg struct {
	StarboardXTD   *float64 `json:"starboard_xtd,omitempty"`
	PortsideXTD    *float64 `json:"portside_xtd,omitempty"`
	SafetyContour  *float64 `json:"safety_contour,omitempty"`
	SafetyDepth    *float64 `json:"safety_depth,omitempty"`
	GeometryType   string   `json:"geometry_type,omitempty"`
	SpeedMin       *float64 `json:"speed_min,omitempty"`
	SpeedMax       *float64 `json:"speed_max,omitempty"`
	DraughtForward *float64 `json:"draught_forward,omitempty"`
	DraughtAft     *float64 `json:"draught_aft,omitempty"`
	StaticUKC      *float64 `json:"static_ukc,omitempty"`
	DynamicUKC     *float64 `json:"dynamic_ukc,omitempty"`
	Masthead       *float64 `json:"masthead,omitempty"`
	Note           string   `json:"note,omitempty"`
}

// legAttrs lists the numeric leg attributes in document order.
func legAttrs(l *Leg) []struct {
	name string
	v    **float64
} {
	return []struct {
		name string
		v    **float64
	}{
		{"starboardXTD", &l.StarboardXTD},
		{"portsideXTD", &l.PortsideXTD},
		{"safetyContour", &l.SafetyContour},
		{"safetyDepth", &l.SafetyDepth},
		{"speedMin", &l.SpeedMin},
		{"speedMax", &l.SpeedMax},
		{"draughtForward", &l.DraughtForward},
		{"draughtAft", &l.DraughtAft},
		{"staticUKC", &l.StaticUKC},
		{"dynamicUKC", &l.DynamicUKC},
		{"masthead", &l.Masthead},
	}
}

// Encode writes cfg under root (the rtz:route element).
func Encode(ctx element.Context, root *etree.Element, cfg *Config) error {
	info := ctx.Child(root, "rtz:routeInfo")
	info.CreateAttr("routeName", cfg.RouteName)
	setAttr(info, "routeAuthor", cfg.RouteAuthor)
	setAttr(info, "routeStatus", cfg.RouteStatus)
	if v := cfg.ValidityPeriod; v != nil {
		if v.Start != nil {
			info.CreateAttr("validityPeriodStart", v.Start.String())
		}
		if v.End != nil {
			info.CreateAttr("validityPeriodStop", v.End.String())
		}
	}
	if v := cfg.Vessel; v != nil {
		setAttr(info, "vesselName", v.Name)
		if v.MMSI != nil {
			info.CreateAttr("vesselMMSI", strconv.Itoa(*v.MMSI))
		}
		if v.IMO != nil {
			info.CreateAttr("vesselIMO", strconv.Itoa(*v.IMO))
		}
		setAttr(info, "vesselVoyage", v.Voyage)
	}

	waypoints := ctx.Child(root, "rtz:waypoints")
	for _, wp := range cfg.Waypoints {
		el := ctx.Child(waypoints, "rtz:waypoint")
		el.CreateAttr("id", strconv.Itoa(wp.ID))
		setAttr(el, "name", wp.Name)
		if wp.Radius != nil {
			el.CreateAttr("radius", element.FormatFloat(*wp.Radius))
		}
		if wp.Revision != nil {
			el.CreateAttr("revision", strconv.Itoa(*wp.Revision))
		}

		pos := ctx.Child(el, "rtz:position")
		pos.CreateAttr("lat", element.FormatFloat(wp.Position.Latitude))
		pos.CreateAttr("lon", element.FormatFloat(wp.Position.Longitude))

		if wp.Leg != nil {
			leg := ctx.Child(el, "rtz:leg")
			for _, a := range legAttrs(wp.Leg) {
				if *a.v != nil {
					leg.CreateAttr(a.name, element.FormatFloat(**a.v))
				}
			}
			setAttr(leg, "geometryType", wp.Leg.GeometryType)
			setAttr(leg, "legNote1", wp.Leg.Note)
		}
	}
	return nil
}

// Decode reads a canonicalised route document rooted at root.
func Decode(root *etree.Element, schema string) (*Config, error) {
	d := &decoder{}
	cfg := &Config{Schema: schema}

	info := element.Find(root, "rtz:routeInfo")
	if info == nil {
		return nil, fmt.Errorf("%w: route has no routeInfo", mdlib.ErrInvalidRecord)
	}
	cfg.RouteName, _ = element.Attr(info, "routeName")
	cfg.RouteAuthor, _ = element.Attr(info, "routeAuthor")
	cfg.RouteStatus, _ = element.Attr(info, "routeStatus")

	var period ValidityPeriod
	period.Start = d.date(info, "validityPeriodStart", "Validity period start")
	period.End = d.date(info, "validityPeriodStop", "Validity period stop")
	if period.Start != nil || period.End != nil {
		cfg.ValidityPeriod = &period
	}

	var vessel Vessel
	vessel.Name, _ = element.Attr(info, "vesselName")
	vessel.MMSI = d.int(info, "vesselMMSI", "Vessel MMSI")
	vessel.IMO = d.int(info, "vesselIMO", "Vessel IMO")
	vessel.Voyage, _ = element.Attr(info, "vesselVoyage")
	if vessel != (Vessel{}) {
		cfg.Vessel = &vessel
	}

	for _, el := range element.FindAll(root, "rtz:waypoints/rtz:waypoint") {
		var wp Waypoint
		if id := d.int(el, "id", "Waypoint id"); id != nil {
			wp.ID = *id
		}
		wp.Name, _ = element.Attr(el, "name")
		wp.Radius = d.float(el, "radius", "Waypoint radius")
		wp.Revision = d.int(el, "revision", "Waypoint revision")

		if pos := element.Find(el, "rtz:position"); pos != nil {
			if v := d.float(pos, "lat", "Waypoint latitude"); v != nil {
				wp.Position.Latitude = *v
			}
			if v := d.float(pos, "lon", "Waypoint longitude"); v != nil {
				wp.Position.Longitude = *v
			}
		}

		if legEl := element.Find(el, "rtz:leg"); legEl != nil {
			leg := &Leg{}
			for _, a := range legAttrs(leg) {
				*a.v = d.float(legEl, a.name, "Leg "+a.name)
			}
			leg.GeometryType, _ = element.Attr(legEl, "geometryType")
			leg.Note, _ = element.Attr(legEl, "legNote1")
			wp.Leg = leg
		}
		cfg.Waypoints = append(cfg.Waypoints, wp)
	}

	if d.err != nil {
		return nil, d.err
	}
	return cfg, nil
}

type decoder struct {
	err error
}

func (d *decoder) fail(message string, err error) {
	if d.err == nil {
		d.err = &mdlib.DecodeError{Message: message, Err: err}
	}
}

func (d *decoder) float(el *etree.Element, attr, field string) *float64 {
	s, ok := element.Attr(el, attr)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		d.fail(field+" could not be parsed as a number", err)
		return nil
	}
	return &v
}

func (d *decoder) int(el *etree.Element, attr, field string) *int {
	s, ok := element.Attr(el, attr)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		d.fail(field+" could not be parsed as an integer", err)
		return nil
	}
	return &v
}

func (d *decoder) date(el *etree.Element, attr, field string) *dates.Date {
	s, ok := element.Attr(el, attr)
	if !ok {
		return nil
	}
	v, err := dates.DecodeDateString(s)
	if err != nil {
		d.fail(field+" could not be parsed as an ISO date value", err)
		return nil
	}
	return &v
}

func setAttr(el *etree.Element, key, value string) {
	if value != "" {
		el.CreateAttr(key, value)
	}
}
