package bloom

// GoalStatus represents the tracking state of a goal ("rock").
type GoalStatus string

const (
	// GoalStatusOnTrack marks a goal as on track.
	GoalStatusOnTrack GoalStatus = "on"
	// GoalStatusAtRisk marks a goal as at risk.
	GoalStatusAtRisk GoalStatus = "off"
	// GoalStatusComplete marks a goal as complete.
	GoalStatusComplete GoalStatus = "complete"
)

// UserSummary identifies a user in list responses.
type UserSummary struct {
	ID       int64
	Name     string
	ImageURL string
}

// Position is a seat a user holds in the organization chart.
type Position struct {
	ID   int64
	Name string
}

// UserDetails describes a user. DirectReports and Positions are populated
// only when requested.
type UserDetails struct {
	ID            int64
	Name          string
	ImageURL      string
	DirectReports []UserSummary
	Positions     []Position
}

// UserSearchResult is one hit from a user search.
type UserSearchResult struct {
	ID             int64
	Name           string
	Description    string
	Email          string
	OrganizationID int64
	ImageURL       string
}

// MeetingListItem identifies a meeting the user attends.
type MeetingListItem struct {
	ID    int64
	Title string
}

// AttendeeInfo identifies a meeting attendee.
type AttendeeInfo struct {
	ID   int64
	Name string
}

// MeetingIssue is an issue as listed within a meeting.
type MeetingIssue struct {
	ID           int64
	Title        string
	NotesURL     string
	CreatedAt    string
	CompletedAt  *string
	UserID       int64
	UserName     string
	MeetingID    int64
	MeetingTitle string
}

// MeetingTodo is a todo as listed within a meeting.
type MeetingTodo struct {
	ID          int64
	Title       string
	DueDate     string
	NotesURL    string
	Status      string
	CreatedAt   string
	CompletedAt *string
	UserID      int64
	UserName    string
}

// MetricInfo is a scorecard measurable tracked by a meeting.
type MetricInfo struct {
	ID        int64
	Title     string
	Target    float64
	Operator  string
	Format    string
	UserID    int64
	UserName  string
	AdminID   int64
	AdminName string
}

// MeetingDetails aggregates a meeting with its attendees, issues, todos and
// metrics.
type MeetingDetails struct {
	ID        int64
	Title     string
	Attendees []AttendeeInfo
	Issues    []MeetingIssue
	Todos     []MeetingTodo
	Metrics   []MetricInfo
}

// CreatedMeeting reports the outcome of a meeting creation.
type CreatedMeeting struct {
	MeetingID int64
	Title     string
	Attendees []int64
}

// TodoItem describes a todo.
type TodoItem struct {
	ID          int64
	Title       string
	NotesURL    string
	DueDate     string
	CreatedAt   string
	CompletedAt *string
	Status      string
}

// GoalInfo describes an active goal.
type GoalInfo struct {
	ID           int64
	UserID       int64
	UserName     string
	Title        string
	CreatedAt    string
	DueDate      string
	Status       string
	MeetingID    int64
	MeetingTitle string
}

// ArchivedGoal describes a goal that has been archived.
type ArchivedGoal struct {
	ID        int64
	Title     string
	CreatedAt string
	DueDate   string
	Status    string
}

// GoalList carries active goals and, when requested, archived ones.
type GoalList struct {
	Active   []GoalInfo
	Archived []ArchivedGoal
}

// CreatedGoal reports the outcome of a goal creation.
type CreatedGoal struct {
	ID           int64
	UserID       int64
	UserName     string
	Title        string
	MeetingID    int64
	MeetingTitle string
	Status       string
	CreatedAt    string
}

// IssueListItem is an issue as returned by list endpoints.
type IssueListItem struct {
	ID           int64
	Title        string
	NotesURL     string
	CreatedAt    string
	MeetingID    int64
	MeetingTitle string
}

// IssueDetails describes a single issue.
type IssueDetails struct {
	ID           int64
	Title        string
	NotesURL     string
	CreatedAt    string
	CompletedAt  *string
	MeetingID    int64
	MeetingTitle string
	UserID       int64
	UserName     string
}

// CreatedIssue reports the outcome of an issue creation.
type CreatedIssue struct {
	ID           int64
	Title        string
	MeetingID    int64
	MeetingTitle string
	UserID       int64
	NotesURL     string
}

// MeetingInfo identifies the meeting a record belongs to.
type MeetingInfo struct {
	ID    int64
	Title string
}

// OwnerDetails identifies the user a record belongs to.
type OwnerDetails struct {
	ID   int64
	Name string
}

// HeadlineInfo reports the outcome of a headline creation.
type HeadlineInfo struct {
	ID           int64
	Title        string
	OwnerDetails OwnerDetails
	NotesURL     string
}

// HeadlineDetails describes a headline.
type HeadlineDetails struct {
	ID             int64
	Title          string
	NotesURL       string
	MeetingDetails MeetingInfo
	OwnerDetails   OwnerDetails
	Archived       bool
	CreatedAt      string
	ClosedAt       *string
}

// ScorecardWeek describes the current scorecard week.
type ScorecardWeek struct {
	ID         int64
	WeekNumber int64
	WeekStart  string
	WeekEnd    string
}

// ScorecardItem is one score of a measurable for a week. Value is nil when
// no score has been entered.
type ScorecardItem struct {
	ID                int64
	MeasurableID      int64
	AccountableUserID int64
	Title             string
	Target            float64
	Value             *float64
	Week              string
	WeekID            int64
	UpdatedAt         string
}

// String returns a pointer to s, for optional input fields.
func String(s string) *string { return &s }

// Int64 returns a pointer to i, for optional input fields.
func Int64(i int64) *int64 { return &i }
