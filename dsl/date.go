package dsl

import (
	"regexp"
	"strconv"
	"time"

	dekode "github.com/corefold/dekode"
)

// dateRe accepts one canonical ISO-8601 subset: a full date, optionally
// followed by a 'T' or space separated wall-clock time with optional
// fractional seconds and optional Z or numeric offset.
var dateRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})(?:[T ]\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})?)?$`)

// Date returns the date decoder. Only the year-month-day captures are kept;
// any time-of-day in the input is discarded and the result is midnight in
// the policy's date location. Out-of-range components normalize the way
// time.Date normalizes them.
func Date(p *dekode.Policy) Primitive[time.Time] {
	return Build(p, Descriptor[time.Time]{
		Kind:   dekode.KindDate,
		Code:   dekode.CodeInvalidFormat,
		Expect: "an ISO-8601 date",
		Valid: func(raw any) bool {
			s, ok := raw.(string)
			return ok && dateRe.MatchString(s)
		},
		Convert: func(raw any) time.Time {
			m := dateRe.FindStringSubmatch(raw.(string))
			y, _ := strconv.Atoi(m[1])
			mo, _ := strconv.Atoi(m[2])
			d, _ := strconv.Atoi(m[3])
			return time.Date(y, time.Month(mo), d, 0, 0, 0, 0, p.DateLocation())
		},
	})
}
