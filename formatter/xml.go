package formatter

import (
	"strconv"
	"strings"
)

// BuildXML serializes a traffic response to XML
func (rb *ResponseBuilder) BuildXML(res *TrafficResponse) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("<StationTraffic>")
	writeElem(&b, "ResponseTimestamp", res.ResponseTimestamp)
	writeElem(&b, "ValidUntil", res.ValidUntil)
	writeElem(&b, "SnapshotID", res.SnapshotID)
	writeFilterXML(&b, res.Filter)

	s := res.Summary
	b.WriteString("<Summary>")
	writeElem(&b, "DepartingTrips", strconv.Itoa(s.DepartingTrips))
	writeElem(&b, "ArrivingTrips", strconv.Itoa(s.ArrivingTrips))
	writeElem(&b, "ActiveStations", strconv.Itoa(s.ActiveStations))
	writeElem(&b, "BusiestStationID", s.BusiestStationID)
	writeElem(&b, "MaxTotalTraffic", strconv.Itoa(s.MaxTotalTraffic))
	b.WriteString("</Summary>")

	b.WriteString("<Stations>")
	for _, st := range res.Stations {
		writeStationXML(&b, st)
	}
	b.WriteString("</Stations>")
	b.WriteString("</StationTraffic>")
	return []byte(b.String())
}

func writeFilterXML(b *strings.Builder, f FilterInfo) {
	b.WriteString("<Filter>")
	writeElem(b, "Minute", strconv.Itoa(f.Minute))
	writeElem(b, "Label", f.Label)
	if f.WindowStart != nil && f.WindowEnd != nil {
		writeElem(b, "WindowStart", strconv.Itoa(*f.WindowStart))
		writeElem(b, "WindowEnd", strconv.Itoa(*f.WindowEnd))
	}
	b.WriteString("</Filter>")
}

func writeStationXML(b *strings.Builder, st StationEntry) {
	b.WriteString("<Station id=\"")
	b.WriteString(xmlEscape(st.ID))
	b.WriteString("\">")
	writeElem(b, "Name", st.Name)
	writeElem(b, "Longitude", formatFloat(st.Longitude))
	writeElem(b, "Latitude", formatFloat(st.Latitude))
	writeElem(b, "Departures", strconv.Itoa(st.Departures))
	writeElem(b, "Arrivals", strconv.Itoa(st.Arrivals))
	writeElem(b, "TotalTraffic", strconv.Itoa(st.TotalTraffic))
	writeElem(b, "Radius", formatFloat(st.Radius))
	// absent flow means the station had no traffic
	if st.Flow != nil {
		writeElem(b, "Flow", formatFloat(*st.Flow))
	}
	writeElem(b, "Tooltip", st.Tooltip)
	b.WriteString("</Station>")
}

// writeElem skips empty values
func writeElem(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(">")
	b.WriteString(xmlEscape(value))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
