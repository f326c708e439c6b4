package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/cpd"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/internal/service/dashboard"
	"github.com/cpdtrack/cpd-backend/internal/service/report"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type categoriesPatchRequest struct {
	Clinical    *bool `json:"clinical"`
	NonClinical *bool `json:"nonClinical"`
	Interactive *bool `json:"interactive"`
	Therapeutic *bool `json:"therapeutic"`
}

func (c *categoriesPatchRequest) patch() domain.CategoriesPatch {
	if c == nil {
		return domain.CategoriesPatch{}
	}
	return domain.CategoriesPatch{
		Clinical:    c.Clinical,
		NonClinical: c.NonClinical,
		Interactive: c.Interactive,
		Therapeutic: c.Therapeutic,
	}
}

// tagRefRequest names an existing tag by id or a new one by text.
type tagRefRequest struct {
	ID   string `json:"id"   validate:"omitempty,uuid"`
	Text string `json:"text" validate:"required_without=ID,excluded_with=ID,max=50"`
}

func tagRefs(in []tagRefRequest) []domain.TagRef {
	refs := make([]domain.TagRef, 0, len(in))
	for _, t := range in {
		if t.ID != "" {
			refs = append(refs, domain.ExistingTag(uuid.MustParse(t.ID)))
			continue
		}
		refs = append(refs, domain.NewTag(t.Text))
	}
	return refs
}

type activityRequest struct {
	Name        string            `json:"name"        validate:"required,max=200"`
	Date        string            `json:"date"        validate:"required,datetime=2006-01-02"`
	Hours       float64           `json:"hours"       validate:"gt=0"`
	Categories  domain.Categories `json:"categories"`
	Description string            `json:"description"`
	Reflection  string            `json:"reflection"`
	EvidenceURL *string           `json:"evidenceUrl" validate:"omitempty,url"`
	Provider    *string           `json:"provider"`
	IsDraft     bool              `json:"isDraft"`
	Tags        []tagRefRequest   `json:"tags"        validate:"max=20,dive"`
}

type activityPatchRequest struct {
	Name        *string                 `json:"name"        validate:"omitempty,max=200"`
	Date        *string                 `json:"date"        validate:"omitempty,datetime=2006-01-02"`
	Hours       *float64                `json:"hours"       validate:"omitempty,gt=0"`
	Categories  *categoriesPatchRequest `json:"categories"`
	Description *string                 `json:"description"`
	Reflection  *string                 `json:"reflection"`
	EvidenceURL *string                 `json:"evidenceUrl"`
	Provider    *string                 `json:"provider"`
	IsDraft     *bool                   `json:"isDraft"`
	Tags        *[]tagRefRequest        `json:"tags"        validate:"omitempty,max=20,dive"`
}

type goalRequest struct {
	Year        string            `json:"year"        validate:"required,len=4,number"`
	Title       string            `json:"title"       validate:"required,max=200"`
	Description *string           `json:"description"`
	Categories  domain.Categories `json:"categories"`
	TargetHours *float64          `json:"targetHours" validate:"omitempty,gt=0"`
	Tags        []tagRefRequest   `json:"tags"        validate:"max=20,dive"`
}

type goalPatchRequest struct {
	Year             *string                 `json:"year"             validate:"omitempty,len=4,number"`
	Title            *string                 `json:"title"            validate:"omitempty,max=200"`
	Description      *string                 `json:"description"`
	Categories       *categoriesPatchRequest `json:"categories"`
	TargetHours      *float64                `json:"targetHours"      validate:"omitempty,gt=0"`
	ClearTargetHours bool                    `json:"clearTargetHours" validate:"excluded_with=TargetHours"`
	Tags             *[]tagRefRequest        `json:"tags"             validate:"omitempty,max=20,dive"`
}

type setTagsRequest struct {
	Tags []tagRefRequest `json:"tags" validate:"max=20,dive"`
}

type profileRequest struct {
	FirstName                 string  `json:"firstName"                 validate:"required,max=100"`
	LastName                  string  `json:"lastName"                  validate:"required,max=100"`
	Phone                     *string `json:"phone"                     validate:"omitempty,max=32"`
	RegistrationNumber        *string `json:"registrationNumber"        validate:"omitempty,max=64"`
	IsTherapeuticallyEndorsed bool    `json:"isTherapeuticallyEndorsed"`
}

type roleRequest struct {
	Role string `json:"role" validate:"required,oneof=optometrist admin"`
}

type feedbackRequest struct {
	PagePath   string `json:"pagePath"   validate:"required,startswith=/,max=500"`
	Message    string `json:"message"    validate:"required,max=2000"`
	IsPositive bool   `json:"isPositive"`
}

// parseDate converts a validated YYYY-MM-DD string.
func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type tagResponse struct {
	ID     uuid.UUID `json:"id"`
	Text   string    `json:"text"`
	Global bool      `json:"global"`
}

func toTags(tags []domain.Tag) []tagResponse {
	out := make([]tagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, tagResponse{ID: t.ID, Text: t.Text, Global: t.IsGlobal()})
	}
	return out
}

type activityResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Date        string             `json:"date"`
	Hours       float64            `json:"hours"`
	Categories  domain.Categories  `json:"categories"`
	Description string             `json:"description"`
	Reflection  string             `json:"reflection"`
	EvidenceURL *string            `json:"evidenceUrl"`
	Provider    *string            `json:"provider"`
	IsDraft     bool               `json:"isDraft"`
	Tags        []tagResponse      `json:"tags"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func toActivity(a *domain.Activity) activityResponse {
	return activityResponse{
		ID:          a.ID,
		Name:        a.Name,
		Date:        a.Date.Format(dateLayout),
		Hours:       a.Hours,
		Categories:  a.Categories,
		Description: a.Description,
		Reflection:  a.Reflection,
		EvidenceURL: a.EvidenceURL,
		Provider:    a.Provider,
		IsDraft:     a.IsDraft,
		Tags:        toTags(a.Tags),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toActivities(list []domain.Activity) []activityResponse {
	out := make([]activityResponse, 0, len(list))
	for i := range list {
		out = append(out, toActivity(&list[i]))
	}
	return out
}

type goalResponse struct {
	ID          uuid.UUID          `json:"id"`
	Year        string             `json:"year"`
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	Categories  domain.Categories  `json:"categories"`
	TargetHours *float64           `json:"targetHours"`
	Tags        []tagResponse      `json:"tags"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func toGoal(g *domain.Goal) goalResponse {
	return goalResponse{
		ID:          g.ID,
		Year:        g.Year,
		Title:       g.Title,
		Description: g.Description,
		Categories:  g.Categories,
		TargetHours: g.TargetHours,
		Tags:        toTags(g.Tags),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func toGoals(list []domain.Goal) []goalResponse {
	out := make([]goalResponse, 0, len(list))
	for i := range list {
		out = append(out, toGoal(&list[i]))
	}
	return out
}

type profileResponse struct {
	UserID                    uuid.UUID `json:"userId"`
	FirstName                 string    `json:"firstName"`
	LastName                  string    `json:"lastName"`
	Phone                     *string   `json:"phone"`
	RegistrationNumber        *string   `json:"registrationNumber"`
	Role                      string    `json:"role"`
	IsTherapeuticallyEndorsed bool      `json:"isTherapeuticallyEndorsed"`
	CreatedAt                 time.Time `json:"createdAt"`
	UpdatedAt                 time.Time `json:"updatedAt"`
}

func toProfile(p *domain.Profile) profileResponse {
	return profileResponse{
		UserID:                    p.UserID,
		FirstName:                 p.FirstName,
		LastName:                  p.LastName,
		Phone:                     p.Phone,
		RegistrationNumber:        p.RegistrationNumber,
		Role:                      p.Role.String(),
		IsTherapeuticallyEndorsed: p.IsTherapeuticallyEndorsed,
		CreatedAt:                 p.CreatedAt,
		UpdatedAt:                 p.UpdatedAt,
	}
}

type subscriptionResponse struct {
	Status             string     `json:"status"`
	Active             bool       `json:"active"`
	PlanName           string     `json:"planName"`
	CurrentPeriodStart *time.Time `json:"currentPeriodStart"`
	CurrentPeriodEnd   *time.Time `json:"currentPeriodEnd"`
	CancelAt           *time.Time `json:"cancelAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func toSubscription(s *domain.Subscription) subscriptionResponse {
	return subscriptionResponse{
		Status:             string(s.Status),
		Active:             s.IsActive(),
		PlanName:           s.PlanName,
		CurrentPeriodStart: s.CurrentPeriodStart,
		CurrentPeriodEnd:   s.CurrentPeriodEnd,
		CancelAt:           s.CancelAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

type feedbackResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	PagePath   string    `json:"pagePath"`
	Message    string    `json:"message"`
	IsPositive bool      `json:"isPositive"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toFeedback(f *domain.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:         f.ID,
		UserID:     f.UserID,
		PagePath:   f.PagePath,
		Message:    f.Message,
		IsPositive: f.IsPositive,
		CreatedAt:  f.CreatedAt,
	}
}

type goalProgressResponse struct {
	Goal        goalResponse `json:"goal"`
	LoggedHours float64      `json:"loggedHours"`
	Percent     float64      `json:"percent"`
}

func toGoalsProgress(list []domain.GoalProgress) []goalProgressResponse {
	out := make([]goalProgressResponse, 0, len(list))
	for i := range list {
		out = append(out, goalProgressResponse{
			Goal:        toGoal(&list[i].Goal),
			LoggedHours: list[i].LoggedHours,
			Percent:     list[i].Percent,
		})
	}
	return out
}

type dashboardResponse struct {
	Year          int                    `json:"year"`
	Endorsed      bool                   `json:"endorsed"`
	Summary       cpd.Summary            `json:"summary"`
	Compliance    cpd.Compliance         `json:"compliance"`
	GoalsProgress []goalProgressResponse `json:"goalsProgress"`
}

func toDashboard(d *dashboard.Dashboard) dashboardResponse {
	return dashboardResponse{
		Year:          d.Year,
		Endorsed:      d.Endorsed,
		Summary:       d.Summary,
		Compliance:    d.Compliance,
		GoalsProgress: toGoalsProgress(d.GoalsProgress),
	}
}

type reportResponse struct {
	Year        int                    `json:"year"`
	Profile     *profileResponse       `json:"profile"`
	Summary     cpd.Summary            `json:"summary"`
	Compliance  cpd.Compliance         `json:"compliance"`
	Activities  []activityResponse     `json:"activities"`
	Goals       []goalProgressResponse `json:"goals"`
	GeneratedAt time.Time              `json:"generatedAt"`
}

func toReport(r *report.Report) reportResponse {
	out := reportResponse{
		Year:        r.Year,
		Summary:     r.Summary,
		Compliance:  r.Compliance,
		Activities:  toActivities(r.Activities),
		Goals:       toGoalsProgress(r.Goals),
		GeneratedAt: r.GeneratedAt,
	}
	if r.Profile != nil {
		p := toProfile(r.Profile)
		out.Profile = &p
	}
	return out
}
