package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	// Suji-gu office station to Yongin city hall, roughly 8.5 km apart.
	suji := Coordinate{Lat: 37.3219, Lng: 127.0947}
	cityHall := Coordinate{Lat: 37.2411, Lng: 127.1776}

	d := DistanceMeters(suji, cityHall)
	assert.InDelta(t, 11600, d, 1000)

	assert.Equal(t, 0, DistanceMeters(suji, suji))
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	a := Coordinate{Lat: 37.0, Lng: 127.0}
	b := Coordinate{Lat: 37.1, Lng: 127.1}
	assert.Equal(t, DistanceMeters(a, b), DistanceMeters(b, a))
}

func TestCoordinateIsZero(t *testing.T) {
	assert.True(t, Coordinate{}.IsZero())
	assert.False(t, Coordinate{Lat: 37.2411, Lng: 127.1776}.IsZero())
}
