package llm

import (
	"strconv"
	"strings"
)

// roleContext carries role-specific framing for prompts.
type roleContext struct {
	FocusAreas       []string
	Responsibilities string
	KeySkills        []string
}

// techContext carries technology-specific framing for prompts.
type techContext struct {
	QuestionTypes []string
	Concepts      []string
}

// difficultyForExperience maps years of experience to the difficulty
// label and competency description used in prompts. The input is the
// free-text experience field; "3-5" and "8+" style values resolve to
// their lower bound.
func difficultyForExperience(experience string) (level, complexity string) {
	years := parseExperienceYears(experience)
	switch {
	case years < 1:
		return "entry-level", "basic concepts, simple implementations, and fundamental understanding"
	case years < 3:
		return "junior-level", "practical application, debugging skills, and understanding of common patterns"
	case years < 5:
		return "mid-level", "design decisions, performance considerations, and best practices"
	case years < 8:
		return "senior-level", "architecture decisions, trade-offs, scalability, and team leadership"
	default:
		return "expert-level", "system design, optimization, mentoring, and industry innovations"
	}
}

// expectedCompetency maps experience to the competency line used in the
// evaluation rubric.
func expectedCompetency(experience string) string {
	years := parseExperienceYears(experience)
	switch {
	case years < 1:
		return "basic understanding and eagerness to learn"
	case years < 3:
		return "practical application and debugging skills"
	case years < 5:
		return "design decisions and best practices knowledge"
	case years < 8:
		return "architectural thinking and leadership capabilities"
	default:
		return "expert-level insights and innovation"
	}
}

func parseExperienceYears(experience string) float64 {
	s := strings.TrimSpace(experience)
	if lower, _, ok := strings.Cut(s, "-"); ok {
		s = lower
	}
	s = strings.TrimSuffix(s, "+")
	years, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 3 // mid-range default when the field is unparseable
	}
	return years
}

// contextForRole returns prompt framing for a role title.
func contextForRole(role string) roleContext {
	r := strings.ToLower(role)
	switch {
	case strings.Contains(r, "frontend"), strings.Contains(r, "front-end"), strings.Contains(r, "ui"):
		return roleContext{
			FocusAreas:       []string{"user experience", "performance optimization", "accessibility", "responsive design"},
			Responsibilities: "building user interfaces, optimizing user experience, and ensuring cross-browser compatibility",
			KeySkills:        []string{"component architecture", "state management", "performance optimization", "testing"},
		}
	case strings.Contains(r, "backend"), strings.Contains(r, "back-end"), strings.Contains(r, "server"):
		return roleContext{
			FocusAreas:       []string{"API design", "database optimization", "security", "scalability"},
			Responsibilities: "designing APIs, managing databases, ensuring security, and building scalable systems",
			KeySkills:        []string{"system architecture", "database design", "security implementation", "performance optimization"},
		}
	case strings.Contains(r, "fullstack"), strings.Contains(r, "full-stack"), strings.Contains(r, "full stack"):
		return roleContext{
			FocusAreas:       []string{"end-to-end development", "API integration", "database design", "user experience"},
			Responsibilities: "developing complete applications from frontend to backend, integrating systems",
			KeySkills:        []string{"full-stack architecture", "API design", "database management", "deployment"},
		}
	case strings.Contains(r, "devops"), strings.Contains(r, "sre"), strings.Contains(r, "infrastructure"):
		return roleContext{
			FocusAreas:       []string{"CI/CD", "containerization", "monitoring", "infrastructure as code"},
			Responsibilities: "automating deployments, managing infrastructure, ensuring system reliability",
			KeySkills:        []string{"automation", "monitoring", "containerization", "cloud platforms"},
		}
	case strings.Contains(r, "data"), strings.Contains(r, "analytics"), strings.Contains(r, "scientist"):
		return roleContext{
			FocusAreas:       []string{"data processing", "machine learning", "statistical analysis", "data visualization"},
			Responsibilities: "analyzing data, building ML models, creating insights from data",
			KeySkills:        []string{"data analysis", "machine learning", "statistical modeling", "data visualization"},
		}
	case strings.Contains(r, "mobile"), strings.Contains(r, "ios"), strings.Contains(r, "android"):
		return roleContext{
			FocusAreas:       []string{"mobile UX", "platform-specific features", "performance", "offline functionality"},
			Responsibilities: "developing mobile applications, optimizing for mobile platforms",
			KeySkills:        []string{"platform development", "mobile UI/UX", "performance optimization", "platform integration"},
		}
	default:
		return roleContext{
			FocusAreas:       []string{"software design", "problem solving", "code quality", "collaboration"},
			Responsibilities: "developing software solutions, writing maintainable code, collaborating with teams",
			KeySkills:        []string{"programming", "problem solving", "code quality", "teamwork"},
		}
	}
}

// contextForTech returns prompt framing for a technology name.
func contextForTech(tech string) techContext {
	switch strings.ToLower(tech) {
	case "python", "java", "javascript", "typescript", "c++", "c#", "go", "rust":
		return techContext{
			QuestionTypes: []string{"language-specific features", "performance optimization", "design patterns", "best practices"},
			Concepts:      []string{tech + " specific features", "memory management", "concurrency", "error handling"},
		}
	case "react", "vue", "angular", "svelte", "nextjs", "nuxt":
		return techContext{
			QuestionTypes: []string{"component design", "state management", "performance", "testing"},
			Concepts:      []string{"component lifecycle", "state management", "virtual DOM", "rendering optimization"},
		}
	case "nodejs", "express", "django", "flask", "spring", "fastapi":
		return techContext{
			QuestionTypes: []string{"API design", "middleware", "authentication", "performance"},
			Concepts:      []string{"request handling", "middleware architecture", "security", "scalability"},
		}
	case "postgresql", "mysql", "mongodb", "redis", "elasticsearch":
		return techContext{
			QuestionTypes: []string{"query optimization", "schema design", "indexing", "performance"},
			Concepts:      []string{"database design", "query optimization", "indexing strategies", "data consistency"},
		}
	case "aws", "azure", "gcp", "docker", "kubernetes", "terraform":
		return techContext{
			QuestionTypes: []string{"infrastructure design", "deployment strategies", "monitoring", "security"},
			Concepts:      []string{"cloud architecture", "containerization", "infrastructure as code", "scalability"},
		}
	default:
		return techContext{
			QuestionTypes: []string{"implementation", "best practices", "problem solving"},
			Concepts:      []string{tech + " fundamentals", "practical application"},
		}
	}
}
