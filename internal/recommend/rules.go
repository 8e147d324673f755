package recommend

import "strings"

const (
	missingKeywordsLimit = 10
	missingSkillsLimit   = 8
	minResumeWords       = 200
)

const lengthAdvice = "Your resume appears to be quite short. Consider adding " +
	"more details about your experience, projects, and achievements."

var generalAdviceItems = []string{
	"Quantify achievements with numbers and metrics",
	"Use action verbs to describe your experience",
	"Tailor your resume summary to match the job description",
	"Ensure your resume is free of grammatical errors",
}

type missingKeywordsRule struct {
	limit int
}

func (r *missingKeywordsRule) Name() string { return "missing_keywords" }

func (r *missingKeywordsRule) Apply(deps Deps, in Input) (*Recommendation, bool) {
	missing := deps.Scorer.MissingKeywords(in.Resume, in.Job)
	if len(missing) == 0 {
		return nil, false
	}

	if len(missing) > r.limit {
		missing = missing[:r.limit]
	}

	return &Recommendation{
		Kind:  KindMissingKeywords,
		Title: "Add these keywords to your resume",
		Items: missing,
	}, true
}

type missingSkillsRule struct {
	limit int
}

func (r *missingSkillsRule) Name() string { return "missing_skills" }

func (r *missingSkillsRule) Apply(deps Deps, in Input) (*Recommendation, bool) {
	jobSkills := deps.Extractor.Skills(in.Job)
	if len(jobSkills) == 0 {
		return nil, false
	}

	resumeSkills := make(map[string]struct{})
	for _, skill := range deps.Extractor.Skills(in.Resume) {
		resumeSkills[skill] = struct{}{}
	}

	var missing []string
	for _, skill := range jobSkills {
		if _, ok := resumeSkills[skill]; ok {
			continue
		}
		missing = append(missing, skill)
	}

	if len(missing) == 0 {
		return nil, false
	}

	if len(missing) > r.limit {
		missing = missing[:r.limit]
	}

	return &Recommendation{
		Kind:  KindMissingSkills,
		Title: "Highlight these skills if you have them",
		Items: missing,
	}, true
}

type lengthRule struct {
	minWords int
}

func (r *lengthRule) Name() string { return "length" }

func (r *lengthRule) Apply(_ Deps, in Input) (*Recommendation, bool) {
	if len(strings.Fields(in.Resume)) >= r.minWords {
		return nil, false
	}

	return &Recommendation{
		Kind:  KindLengthWarning,
		Title: "Expand your resume content",
		Text:  lengthAdvice,
	}, true
}

type generalAdviceRule struct{}

func (r *generalAdviceRule) Name() string { return "general" }

func (r *generalAdviceRule) Apply(Deps, Input) (*Recommendation, bool) {
	items := make([]string, len(generalAdviceItems))
	copy(items, generalAdviceItems)

	return &Recommendation{
		Kind:  KindGeneralAdvice,
		Title: "General improvements",
		Items: items,
	}, true
}
