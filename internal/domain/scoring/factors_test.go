package scoring

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSkillScore_ScenarioPartialMatch(t *testing.T) {
	c := CandidateProfile{Skills: []SkillClaim{
		{Name: "React", Level: LevelAdvanced},
		{Name: "Node.js", Level: LevelIntermediate},
	}}
	o := Opportunity{RequiredSkills: []string{"React", "Node.js", "Python"}}

	got := skillScore(c, o)
	want := (1.0 + 1.0 + 0.0) / 3
	if !almostEqual(got, want) {
		t.Fatalf("skill score = %v, want %v", got, want)
	}
}

func TestSkillScore_NoRequiredSkillsIsNeutral(t *testing.T) {
	c := CandidateProfile{Skills: []SkillClaim{{Name: "Go", Level: LevelExpert}}}
	if got := skillScore(c, Opportunity{}); !almostEqual(got, 0.5) {
		t.Fatalf("skill score = %v, want 0.5", got)
	}
}

func TestSkillScore_BelowLevelHalfCredit(t *testing.T) {
	c := CandidateProfile{Skills: []SkillClaim{{Name: "python", Level: LevelBeginner}}}
	o := Opportunity{RequiredSkills: []string{"Python"}}
	if got := skillScore(c, o); !almostEqual(got, 0.5) {
		t.Fatalf("skill score = %v, want 0.5", got)
	}
}

func TestSkillScore_CaseInsensitive(t *testing.T) {
	c := CandidateProfile{Skills: []SkillClaim{{Name: "POSTGRESQL", Level: LevelAdvanced}}}
	o := Opportunity{RequiredSkills: []string{"postgresql"}}
	if got := skillScore(c, o); !almostEqual(got, 1.0) {
		t.Fatalf("skill score = %v, want 1.0", got)
	}
}

func TestExperienceScore_NoRequirement(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := CandidateProfile{}
	o := Opportunity{RequiredExperienceYears: 0}
	if got := experienceScore(c, o, now); !almostEqual(got, 1.0) {
		t.Fatalf("experience score = %v, want 1.0", got)
	}
}

func TestExperienceScore_RatioWhenBelowMinimum(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	start := now.AddDate(-1, 0, 0)
	c := CandidateProfile{Experience: []ExperienceEntry{{Title: "Intern", StartDate: start}}}
	o := Opportunity{RequiredExperienceYears: 4}

	got := experienceScore(c, o, now)
	if got <= 0.2 || got >= 0.3 {
		t.Fatalf("experience score = %v, want roughly 0.25", got)
	}
}

func TestExperienceScore_OpenEndedEntryUsesNow(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	start := now.AddDate(-3, 0, 0)
	c := CandidateProfile{Experience: []ExperienceEntry{{Title: "Engineer", StartDate: start}}}
	o := Opportunity{RequiredExperienceYears: 2}

	if got := experienceScore(c, o, now); !almostEqual(got, 1.0) {
		t.Fatalf("experience score = %v, want 1.0", got)
	}
}

func TestLocationScore_RemoteMatch(t *testing.T) {
	c := CandidateProfile{Preferences: Preferences{WorkMode: WorkModeRemote}}
	o := Opportunity{Location: OpportunityLocation{City: "Austin", IsRemote: true}}
	if got := locationScore(c, o); !almostEqual(got, 1.0) {
		t.Fatalf("location score = %v, want 1.0 for remote/remote", got)
	}
}

func TestLocationScore_SubstringMatch(t *testing.T) {
	c := CandidateProfile{Preferences: Preferences{WorkMode: WorkModeOnsite, Locations: []string{"bangalore"}}}
	o := Opportunity{Location: OpportunityLocation{City: "Bangalore Urban", Country: "India"}}
	if got := locationScore(c, o); !almostEqual(got, 1.0) {
		t.Fatalf("location score = %v, want 1.0", got)
	}
}

func TestLocationScore_MismatchIsSoft(t *testing.T) {
	c := CandidateProfile{Preferences: Preferences{WorkMode: WorkModeOnsite, Locations: []string{"Berlin"}}}
	o := Opportunity{Location: OpportunityLocation{City: "Tokyo", Country: "Japan"}}
	if got := locationScore(c, o); !almostEqual(got, 0.3) {
		t.Fatalf("location score = %v, want 0.3", got)
	}
}

func TestCompensationScore_HourlyNormalization(t *testing.T) {
	c := CandidateProfile{Preferences: Preferences{SalaryMin: 50000, SalaryMax: 90000}}

	// 15/hr normalizes to 31,200/yr, below 80% of the 50k minimum.
	low := Opportunity{Compensation: Compensation{Min: 15, Max: 15, Period: PayPeriodHourly}}
	if got := compensationScore(c, low); !almostEqual(got, 0.3) {
		t.Fatalf("compensation score = %v, want 0.3", got)
	}

	// 22/hr normalizes to 45,760/yr, within 80% of the minimum.
	near := Opportunity{Compensation: Compensation{Min: 22, Max: 22, Period: PayPeriodHourly}}
	if got := compensationScore(c, near); !almostEqual(got, 0.7) {
		t.Fatalf("compensation score = %v, want 0.7", got)
	}

	// 30/hr normalizes to 62,400/yr, inside the preferred range.
	within := Opportunity{Compensation: Compensation{Min: 30, Max: 30, Period: PayPeriodHourly}}
	if got := compensationScore(c, within); !almostEqual(got, 1.0) {
		t.Fatalf("compensation score = %v, want 1.0", got)
	}
}

func TestCompensationScore_MonthlyNormalization(t *testing.T) {
	c := CandidateProfile{Preferences: Preferences{SalaryMin: 50000, SalaryMax: 90000}}
	o := Opportunity{Compensation: Compensation{Min: 5000, Max: 5000, Period: PayPeriodMonthly}}
	if got := compensationScore(c, o); !almostEqual(got, 1.0) {
		t.Fatalf("compensation score = %v, want 1.0 for 60k/yr", got)
	}
}

func TestCompensationScore_MissingDataIsNeutral(t *testing.T) {
	if got := compensationScore(CandidateProfile{}, Opportunity{}); !almostEqual(got, 0.5) {
		t.Fatalf("compensation score = %v, want 0.5", got)
	}
	c := CandidateProfile{Preferences: Preferences{SalaryMin: 50000, SalaryMax: 90000}}
	if got := compensationScore(c, Opportunity{}); !almostEqual(got, 0.5) {
		t.Fatalf("compensation score = %v, want 0.5 for unstated pay", got)
	}
}

func TestOrgSizeScore_OrdinalDistance(t *testing.T) {
	cases := []struct {
		pref string
		opp  string
		want float64
	}{
		{OrgSizeStartup, OrgSizeStartup, 1.0},
		{OrgSizeStartup, OrgSizeSmall, 0.75},
		{OrgSizeStartup, OrgSizeEnterprise, 0.0},
		{OrgSizeMedium, OrgSizeLarge, 0.75},
		{"", "", 1.0},
		{"unknown", OrgSizeMedium, 1.0},
	}
	for _, tc := range cases {
		c := CandidateProfile{Preferences: Preferences{OrgSize: tc.pref}}
		o := Opportunity{OrgSize: tc.opp}
		if got := orgSizeScore(c, o); !almostEqual(got, tc.want) {
			t.Fatalf("org size score(%q,%q) = %v, want %v", tc.pref, tc.opp, got, tc.want)
		}
	}
}

func TestWorkModeScore(t *testing.T) {
	cases := []struct {
		pref string
		mode string
		want float64
	}{
		{WorkModeRemote, WorkModeRemote, 1.0},
		{WorkModeRemote, WorkModeHybrid, 0.7},
		{WorkModeHybrid, WorkModeOnsite, 0.7},
		{WorkModeRemote, WorkModeOnsite, 0.3},
		{"", WorkModeOnsite, 0.7},
	}
	for _, tc := range cases {
		c := CandidateProfile{Preferences: Preferences{WorkMode: tc.pref}}
		o := Opportunity{Location: OpportunityLocation{WorkMode: tc.mode}}
		if got := workModeScore(c, o); !almostEqual(got, tc.want) {
			t.Fatalf("work mode score(%q,%q) = %v, want %v", tc.pref, tc.mode, got, tc.want)
		}
	}
}

func TestAcademicScore(t *testing.T) {
	c := CandidateProfile{Academic: AcademicInfo{Program: "B.Tech Computer Science", Department: "Engineering"}}

	match := Opportunity{RequiredEducation: []string{"computer science"}}
	if got := academicScore(c, match); !almostEqual(got, 1.0) {
		t.Fatalf("academic score = %v, want 1.0", got)
	}

	miss := Opportunity{RequiredEducation: []string{"economics"}}
	if got := academicScore(c, miss); !almostEqual(got, 0.5) {
		t.Fatalf("academic score = %v, want 0.5", got)
	}

	if got := academicScore(c, Opportunity{}); !almostEqual(got, 0.5) {
		t.Fatalf("academic score = %v, want 0.5 when no requirement", got)
	}
}

func TestFactors_AlwaysInRange(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	e := NewEngineWithClock(func() time.Time { return now })

	candidates := []CandidateProfile{
		{},
		{
			Skills:      []SkillClaim{{Name: "Go", Level: "weird-level"}, {Name: "", Level: ""}},
			Experience:  []ExperienceEntry{{StartDate: now.AddDate(1, 0, 0)}, {}},
			Preferences: Preferences{SalaryMin: -100, SalaryMax: -1, WorkMode: "???", OrgSize: "mega"},
		},
	}
	opportunities := []Opportunity{
		{},
		{
			RequiredSkills:          []string{"", "Go", "go"},
			RequiredExperienceYears: -2,
			RequiredEducation:       []string{""},
			Compensation:            Compensation{Min: -5, Max: -1, Period: "fortnightly"},
			OrgSize:                 "galactic",
		},
	}

	for _, c := range candidates {
		for _, o := range opportunities {
			f := e.CalculateFactors(c, o)
			for name, v := range map[string]float64{
				"skill":        f.Skill,
				"experience":   f.Experience,
				"location":     f.Location,
				"compensation": f.Compensation,
				"orgsize":      f.OrgSize,
				"workmode":     f.WorkMode,
				"academic":     f.Academic,
			} {
				if v < 0 || v > 1 {
					t.Fatalf("%s factor out of range: %v", name, v)
				}
			}
		}
	}
}
