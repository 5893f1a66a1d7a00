// Package availability implements the slot generator shared by the public
// availability preview and the booking validation path. Both callers must
// observe identical slots for the same inputs, so the generator is a pure
// function of its arguments, including the reference time.
package availability

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultTimezone = "America/Sao_Paulo"

// DefaultBlockingStatuses are the appointment statuses that occupy time
// when no explicit blocking set is configured.
var DefaultBlockingStatuses = []AppointmentStatus{StatusScheduled, StatusConfirmed}

// Generate produces every candidate slot for the date range, each labeled
// available, booked or blocked. Malformed inputs (inactive service,
// non-positive duration, inverted or zero date range, no active windows)
// yield an empty list rather than an error so that both call sites stay
// total. The result is sorted ascending by start instant.
func Generate(
	service Service,
	windows []WorkWindow,
	appointments []Appointment,
	blackouts []BlackoutRange,
	dateRange DateRange,
	rules Rules,
	now time.Time,
) []Slot {
	if !service.Active || service.DurationMin <= 0 {
		return nil
	}
	if dateRange.Start.IsZero() || dateRange.End.IsZero() || dateRange.Start.After(dateRange.End) {
		return nil
	}

	loc := rules.Location
	if loc == nil {
		loc, _ = time.LoadLocation(DefaultTimezone)
	}
	blocking := rules.BlockingStatuses
	if len(blocking) == 0 {
		blocking = DefaultBlockingStatuses
	}

	active := windows[:0:0]
	for _, w := range windows {
		if w.Active {
			active = append(active, w)
		}
	}
	if len(active) == 0 {
		return nil
	}

	duration := time.Duration(service.DurationMin) * time.Minute
	step := duration + time.Duration(rules.IntervalMinutes)*time.Minute

	rangeStart := dateRange.Start.In(loc)
	rangeEnd := dateRange.End.In(loc)
	firstDay := time.Date(rangeStart.Year(), rangeStart.Month(), rangeStart.Day(), 0, 0, 0, 0, loc)
	lastDay := time.Date(rangeEnd.Year(), rangeEnd.Month(), rangeEnd.Day(), 0, 0, 0, 0, loc)

	var slots []Slot
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		weekday := int(day.Weekday())

		for _, w := range active {
			if w.Weekday != weekday {
				continue
			}

			windowStart, okStart := windowBoundary(day, w.Start, loc)
			windowEnd, okEnd := windowBoundary(day, w.End, loc)
			if !okStart || !okEnd || !windowEnd.After(windowStart) {
				continue
			}

			for cursor := windowStart; ; cursor = cursor.Add(step) {
				slotEnd := cursor.Add(duration)
				if slotEnd.After(windowEnd) {
					break
				}

				slots = append(slots, classify(service, cursor, slotEnd, now, rules, blocking, appointments, blackouts, loc))

				if !cursor.Add(step).Before(windowEnd) {
					break
				}
			}
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartsAt.Before(slots[j].StartsAt)
	})
	return slots
}

// FindSlot returns the slot starting exactly at the given instant, or nil.
func FindSlot(slots []Slot, startsAt time.Time) *Slot {
	for i := range slots {
		if slots[i].StartsAt.Equal(startsAt) {
			return &slots[i]
		}
	}
	return nil
}

// classify evaluates the candidate interval in strict priority order:
// policy gates (lead time, max advance) first, then real data
// (appointments, blackouts). Appointment overlap uses exclusive endpoints
// so back-to-back bookings do not block each other; blackout overlap is
// inclusive so a slot touching a vacation boundary is still blocked.
func classify(
	service Service,
	slotStart, slotEnd time.Time,
	now time.Time,
	rules Rules,
	blocking []AppointmentStatus,
	appointments []Appointment,
	blackouts []BlackoutRange,
	loc *time.Location,
) Slot {
	slot := Slot{
		ID:        fmt.Sprintf("%s-%s", service.ID, slotStart.UTC().Format(time.RFC3339)),
		ServiceID: service.ID,
		StartsAt:  slotStart,
		EndsAt:    slotEnd,
		Status:    SlotAvailable,
	}

	switch {
	case rules.MinLeadMinutes > 0 && slotStart.Before(now.Add(time.Duration(rules.MinLeadMinutes)*time.Minute)):
		slot.Status = SlotBlocked
		slot.Reason = ReasonLeadTime
	case rules.MaxAdvanceDays > 0 && slotStart.After(now.AddDate(0, 0, rules.MaxAdvanceDays)):
		slot.Status = SlotBlocked
		slot.Reason = ReasonMaxAdvance
	default:
		if id, ok := blockingAppointment(slotStart, slotEnd, appointments, blocking); ok {
			slot.Status = SlotBooked
			slot.Reason = ReasonAppointment
			slot.AppointmentID = &id
		} else if withinBlackout(slotStart, slotEnd, blackouts, loc) {
			slot.Status = SlotBlocked
			slot.Reason = ReasonVacation
		}
	}

	return slot
}

// blockingAppointment scans in input order and returns the first
// blocking-status appointment whose interval strictly overlaps the
// candidate. Touching boundaries do not count.
func blockingAppointment(slotStart, slotEnd time.Time, appointments []Appointment, blocking []AppointmentStatus) (uuid.UUID, bool) {
	for _, a := range appointments {
		if !statusIn(a.Status, blocking) {
			continue
		}
		if a.StartsAt.Before(slotEnd) && slotStart.Before(a.EndsAt) {
			return a.ID, true
		}
	}
	return uuid.Nil, false
}

// withinBlackout expands each blackout to [startsOn 00:00:00, endsOn
// 23:59:59.999] local time and tests inclusive overlap against the
// candidate interval. Unparseable dates contribute no blocking.
func withinBlackout(slotStart, slotEnd time.Time, blackouts []BlackoutRange, loc *time.Location) bool {
	for _, b := range blackouts {
		start, err := time.ParseInLocation(time.DateOnly, b.StartsOn, loc)
		if err != nil {
			continue
		}
		end, err := time.ParseInLocation(time.DateOnly, b.EndsOn, loc)
		if err != nil {
			continue
		}
		end = end.Add(24*time.Hour - time.Millisecond)

		if !slotStart.After(end) && !slotEnd.Before(start) {
			return true
		}
	}
	return false
}

func statusIn(s AppointmentStatus, set []AppointmentStatus) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}

// windowBoundary combines a calendar day with a wall-clock time of day,
// interpreted in the configured zone.
func windowBoundary(day time.Time, wallClock string, loc *time.Location) (time.Time, bool) {
	h, m, s, ok := parseWallClock(wallClock)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, s, 0, loc), true
}

func parseWallClock(v string) (h, m, s int, ok bool) {
	parts := strings.Split(v, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, false
	}
	fields := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, 0, 0, false
		}
		fields[i] = n
	}
	if fields[0] > 23 || fields[1] > 59 || fields[2] > 59 {
		return 0, 0, 0, false
	}
	return fields[0], fields[1], fields[2], true
}
