package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/attendance"
	"gopkg.in/yaml.v3"
)

// policyFile is the YAML layout of WORKDAY_POLICY_FILE. Omitted fields keep the env defaults.
type policyFile struct {
	RestDay   string            `yaml:"rest_day"`
	HalfDay   string            `yaml:"half_day"`
	Expected  map[string]string `yaml:"expected"`
	Tolerance struct {
		LateMinutes     *int `yaml:"late_minutes"`
		EarlyMinutes    *int `yaml:"early_minutes"`
		OvertimeMinutes *int `yaml:"overtime_minutes"`
	} `yaml:"tolerance"`
}

// LoadPolicy builds the workday policy from the POLICY_* env defaults and overlays the YAML
// file at path when path is not empty.
func LoadPolicy(path string) (attendance.Policy, error) {
	p, err := policyFromEnv()
	if err != nil {
		return attendance.Policy{}, err
	}
	if path == "" {
		return p, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return attendance.Policy{}, fmt.Errorf("failed to read policy file: %w", err)
	}
	return applyPolicyYAML(p, raw)
}

func applyPolicyYAML(p attendance.Policy, raw []byte) (attendance.Policy, error) {
	var f policyFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return attendance.Policy{}, fmt.Errorf("failed to parse policy file: %w", err)
	}

	for name, at := range f.Expected {
		session := attendance.SessionType(strings.ToLower(strings.TrimSpace(name)))
		if !session.IsValid() {
			return attendance.Policy{}, fmt.Errorf("policy file: %w: %q", attendance.ErrUnknownSession, name)
		}
		p.ExpectedTimes[session] = at
	}

	var err error
	if f.RestDay != "" {
		if p.RestDay, err = parseWeekday(f.RestDay); err != nil {
			return attendance.Policy{}, fmt.Errorf("policy file: rest_day: %w", err)
		}
	}
	if f.HalfDay != "" {
		if p.HalfDay, err = parseWeekday(f.HalfDay); err != nil {
			return attendance.Policy{}, fmt.Errorf("policy file: half_day: %w", err)
		}
	}
	if f.Tolerance.LateMinutes != nil {
		p.ToleranceLate = time.Duration(*f.Tolerance.LateMinutes) * time.Minute
	}
	if f.Tolerance.EarlyMinutes != nil {
		p.ToleranceEarly = time.Duration(*f.Tolerance.EarlyMinutes) * time.Minute
	}
	if f.Tolerance.OvertimeMinutes != nil {
		p.ToleranceOvertime = time.Duration(*f.Tolerance.OvertimeMinutes) * time.Minute
	}

	return p, nil
}

func policyFromEnv() (attendance.Policy, error) {
	p := attendance.Policy{
		ExpectedTimes: map[attendance.SessionType]string{
			attendance.SessionCheckIn:  getEnv("POLICY_CHECK_IN", "08:00"),
			attendance.SessionLunchOut: getEnv("POLICY_LUNCH_OUT", "13:00"),
			attendance.SessionLunchIn:  getEnv("POLICY_LUNCH_IN", "14:00"),
			attendance.SessionCheckOut: getEnv("POLICY_CHECK_OUT", "17:00"),
		},
	}

	var err error
	if p.ToleranceLate, err = envMinutes("POLICY_TOLERANCE_LATE", "5"); err != nil {
		return attendance.Policy{}, err
	}
	if p.ToleranceEarly, err = envMinutes("POLICY_TOLERANCE_EARLY", "5"); err != nil {
		return attendance.Policy{}, err
	}
	if p.ToleranceOvertime, err = envMinutes("POLICY_TOLERANCE_OVERTIME", "30"); err != nil {
		return attendance.Policy{}, err
	}
	if p.RestDay, err = parseWeekday(getEnv("POLICY_REST_DAY", "sunday")); err != nil {
		return attendance.Policy{}, fmt.Errorf("invalid POLICY_REST_DAY: %w", err)
	}
	if p.HalfDay, err = parseWeekday(getEnv("POLICY_HALF_DAY", "saturday")); err != nil {
		return attendance.Policy{}, fmt.Errorf("invalid POLICY_HALF_DAY: %w", err)
	}
	return p, nil
}

func envMinutes(key, fallback string) (time.Duration, error) {
	n, err := strconv.Atoi(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return time.Duration(n) * time.Minute, nil
}

func parseWeekday(raw string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%q is not a weekday", raw)
}
