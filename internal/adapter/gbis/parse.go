package gbis

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/y-smart/service-tripplan/internal/domain/congestion"
	"github.com/y-smart/service-tripplan/internal/domain/transit"
)

// The provider emits field names in several variants (SCREAMING, camelCase
// and a legacy lowercase set) and numbers both as JSON numbers and as
// strings. All of that tolerance lives in this file; the rest of the app
// only ever sees transit records.

// flexString unmarshals a JSON string or number into a string.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(string(b))
	return nil
}

// flexInt unmarshals a JSON number or numeric string into an int;
// anything unparseable becomes zero.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(n)
	return nil
}

type busArrivalRecord struct {
	RouteName       flexString `json:"ROUTE_NM"`
	RouteNameCamel  flexString `json:"routeNm"`
	RouteNameLegacy flexString `json:"routeno"`

	PredictTime       flexInt `json:"PREDICT_TIME"`
	PredictTimeCamel  flexInt `json:"predictTime"`
	PredictTimeLegacy flexInt `json:"arrtime"`

	LocationNo       flexInt `json:"LOCATION_NO"`
	LocationNoCamel  flexInt `json:"locationNo"`
	LocationNoLegacy flexInt `json:"arrprevstationcnt"`

	BusType       flexString `json:"BUS_TYPE"`
	BusTypeCamel  flexString `json:"busType"`
	BusTypeLegacy flexString `json:"vehicletp"`

	RemainSeat      *flexInt `json:"REMAIN_SEAT"`
	RemainSeatCamel *flexInt `json:"remainSeatCnt"`

	PlateNo      flexString `json:"PLATE_NO"`
	PlateNoCamel flexString `json:"plateNo"`

	StationID      flexString `json:"STATION_ID"`
	StationIDCamel flexString `json:"stationId"`

	RouteID      flexString `json:"ROUTE_ID"`
	RouteIDCamel flexString `json:"routeId"`
}

func (r busArrivalRecord) toDomain() transit.BusArrival {
	return transit.BusArrival{
		BusNumber:    firstString(r.RouteName, r.RouteNameCamel, r.RouteNameLegacy),
		ArrivalMin:   firstInt(r.PredictTime, r.PredictTimeCamel, r.PredictTimeLegacy),
		StationsLeft: firstInt(r.LocationNo, r.LocationNoCamel, r.LocationNoLegacy),
		BusType:      firstStringDefault("일반", r.BusType, r.BusTypeCamel, r.BusTypeLegacy),
		Congestion:   congestion.FromRemainingSeats(firstSeatCount(r.RemainSeat, r.RemainSeatCamel)),
		PlateNumber:  firstString(r.PlateNo, r.PlateNoCamel),
		StationID:    firstString(r.StationID, r.StationIDCamel),
		RouteID:      firstString(r.RouteID, r.RouteIDCamel),
	}
}

type busLocationRecord struct {
	StationSeq      flexInt    `json:"STATION_SEQ"`
	StationSeqCamel flexInt    `json:"stationSeq"`
	PlateNo         flexString `json:"PLATE_NO"`
	PlateNoCamel    flexString `json:"plateNo"`
	RemainSeat      *flexInt   `json:"REMAIN_SEAT"`
	RemainSeatCamel *flexInt   `json:"remainSeatCnt"`
	StationID       flexString `json:"STATION_ID"`
	StationIDCamel  flexString `json:"stationId"`
}

func (r busLocationRecord) toDomain() transit.BusLocation {
	seats := firstSeatCount(r.RemainSeat, r.RemainSeatCamel)
	return transit.BusLocation{
		StationSeq:     firstInt(r.StationSeq, r.StationSeqCamel),
		PlateNumber:    firstString(r.PlateNo, r.PlateNoCamel),
		RemainingSeats: seats,
		Congestion:     congestion.FromRemainingSeats(seats),
		StationID:      firstString(r.StationID, r.StationIDCamel),
	}
}

type busRouteRecord struct {
	RouteID         flexString `json:"ROUTE_ID"`
	RouteIDCamel    flexString `json:"routeId"`
	RouteIDLegacy   flexString `json:"routeid"`
	RouteName       flexString `json:"ROUTE_NM"`
	RouteNameCamel  flexString `json:"routeNm"`
	RouteNameLegacy flexString `json:"routeno"`
	RouteType       flexString `json:"ROUTE_TYPE"`
	RouteTypeLegacy flexString `json:"routetp"`
	StartPoint      flexString `json:"ST_POINT_NM"`
	StartLegacy     flexString `json:"startpoint"`
	EndPoint        flexString `json:"ED_POINT_NM"`
	EndLegacy       flexString `json:"endpoint"`
}

func (r busRouteRecord) toDomain() transit.BusRoute {
	return transit.BusRoute{
		RouteID:     firstString(r.RouteID, r.RouteIDCamel, r.RouteIDLegacy),
		RouteNumber: firstString(r.RouteName, r.RouteNameCamel, r.RouteNameLegacy),
		RouteType:   firstString(r.RouteType, r.RouteTypeLegacy),
		StartPoint:  firstString(r.StartPoint, r.StartLegacy),
		EndPoint:    firstString(r.EndPoint, r.EndLegacy),
	}
}

// decodeRecordList handles the provider quirk of returning either an array
// or a single object under the envelope key.
func decodeRecordList[T any](raw json.RawMessage) ([]T, error) {
	raw = json.RawMessage(bytes.TrimSpace(raw))
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	if raw[0] == '[' {
		var list []T
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	var single T
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []T{single}, nil
}

func firstString(values ...flexString) string {
	for _, v := range values {
		if v != "" {
			return string(v)
		}
	}
	return ""
}

func firstStringDefault(def string, values ...flexString) string {
	if s := firstString(values...); s != "" {
		return s
	}
	return def
}

func firstInt(values ...flexInt) int {
	for _, v := range values {
		if v != 0 {
			return int(v)
		}
	}
	return 0
}

func firstSeatCount(values ...*flexInt) *int {
	for _, v := range values {
		if v != nil {
			n := int(*v)
			return &n
		}
	}
	return nil
}
