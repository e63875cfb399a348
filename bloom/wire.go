package bloom

import "strings"

// Wire types mirror the PascalCase JSON the Bloom Growth API speaks. They
// never leave this package; responses are converted to the exported model
// types by the transform functions below.

type wireUser struct {
	ID             int64  `json:"Id"`
	Name           string `json:"Name"`
	Description    string `json:"Description"`
	Email          string `json:"Email"`
	OrganizationID int64  `json:"OrganizationId"`
	ImageURL       string `json:"ImageUrl"`
	ResultType     string `json:"ResultType"`
}

type wireOwner struct {
	ID       int64  `json:"Id"`
	Name     string `json:"Name"`
	ImageURL string `json:"ImageUrl"`
}

type wireSeat struct {
	Group struct {
		Position struct {
			ID   int64  `json:"Id"`
			Name string `json:"Name"`
		} `json:"Position"`
	} `json:"Group"`
}

type wireMeeting struct {
	ID   int64  `json:"Id"`
	Name string `json:"Name"`
}

type wireCreatedMeeting struct {
	MeetingID int64 `json:"meetingId"`
}

type wireTodo struct {
	ID           int64      `json:"Id"`
	Name         string     `json:"Name"`
	DetailsURL   string     `json:"DetailsUrl"`
	DueDate      string     `json:"DueDate"`
	CreateTime   string     `json:"CreateTime"`
	CompleteTime *string    `json:"CompleteTime"`
	Complete     bool       `json:"Complete"`
	Owner        *wireOwner `json:"Owner"`
}

type wireOrigin struct {
	ID   int64  `json:"Id"`
	Name string `json:"Name"`
}

type wireGoal struct {
	ID         int64        `json:"Id"`
	Name       string       `json:"Name"`
	CreateTime string       `json:"CreateTime"`
	DueDate    string       `json:"DueDate"`
	Complete   bool         `json:"Complete"`
	Completion int          `json:"Completion"`
	Owner      *wireOwner   `json:"Owner"`
	Origins    []wireOrigin `json:"Origins"`
}

type wireIssue struct {
	ID         int64      `json:"Id"`
	Name       string     `json:"Name"`
	DetailsURL string     `json:"DetailsUrl"`
	CreateTime string     `json:"CreateTime"`
	CloseTime  *string    `json:"CloseTime"`
	OriginID   int64      `json:"OriginId"`
	Origin     string     `json:"Origin"`
	Owner      *wireOwner `json:"Owner"`
}

type wireHeadline struct {
	ID         int64      `json:"Id"`
	Name       string     `json:"Name"`
	DetailsURL string     `json:"DetailsUrl"`
	OriginID   int64      `json:"OriginId"`
	Origin     string     `json:"Origin"`
	Owner      *wireOwner `json:"Owner"`
	Archived   bool       `json:"Archived"`
	CreateTime string     `json:"CreateTime"`
	CloseTime  *string    `json:"CloseTime"`
}

type wireMeasurable struct {
	ID        int64      `json:"Id"`
	Name      string     `json:"Name"`
	Target    float64    `json:"Target"`
	Direction string     `json:"Direction"`
	Modifiers string     `json:"Modifiers"`
	Owner     *wireOwner `json:"Owner"`
	Admin     *wireOwner `json:"Admin"`
}

type wireScore struct {
	ID                int64    `json:"Id"`
	MeasurableID      int64    `json:"MeasurableId"`
	AccountableUserID int64    `json:"AccountableUserId"`
	MeasurableName    string   `json:"MeasurableName"`
	Target            float64  `json:"Target"`
	Measured          *float64 `json:"Measured"`
	Week              string   `json:"Week"`
	ForWeek           int64    `json:"ForWeek"`
	DateEntered       string   `json:"DateEntered"`
}

type wireScorecard struct {
	Scores []wireScore `json:"Scores"`
}

type wireWeek struct {
	ID            int64  `json:"Id"`
	ForWeekNumber int64  `json:"ForWeekNumber"`
	ForWeek       string `json:"ForWeek"`
	LocalDate     struct {
		Date string `json:"Date"`
	} `json:"LocalDate"`
}

func ownerID(o *wireOwner) int64 {
	if o == nil {
		return 0
	}
	return o.ID
}

func ownerName(o *wireOwner) string {
	if o == nil {
		return ""
	}
	return o.Name
}

func todoStatus(complete bool) string {
	if complete {
		return "Complete"
	}
	return "Incomplete"
}

func todoFromWire(w wireTodo) TodoItem {
	return TodoItem{
		ID:          w.ID,
		Title:       w.Name,
		NotesURL:    w.DetailsURL,
		DueDate:     w.DueDate,
		CreatedAt:   w.CreateTime,
		CompletedAt: w.CompleteTime,
		Status:      todoStatus(w.Complete),
	}
}

func meetingTodoFromWire(w wireTodo) MeetingTodo {
	return MeetingTodo{
		ID:          w.ID,
		Title:       w.Name,
		DueDate:     w.DueDate,
		NotesURL:    w.DetailsURL,
		Status:      todoStatus(w.Complete),
		CreatedAt:   w.CreateTime,
		CompletedAt: w.CompleteTime,
		UserID:      ownerID(w.Owner),
		UserName:    ownerName(w.Owner),
	}
}

func meetingIssueFromWire(w wireIssue, meetingID int64) MeetingIssue {
	return MeetingIssue{
		ID:           w.ID,
		Title:        w.Name,
		NotesURL:     w.DetailsURL,
		CreatedAt:    w.CreateTime,
		CompletedAt:  w.CloseTime,
		UserID:       ownerID(w.Owner),
		UserName:     ownerName(w.Owner),
		MeetingID:    meetingID,
		MeetingTitle: w.Origin,
	}
}

func goalsFromWire(data []wireGoal) []GoalInfo {
	goals := make([]GoalInfo, 0, len(data))
	for _, g := range data {
		info := GoalInfo{
			ID:        g.ID,
			UserID:    ownerID(g.Owner),
			UserName:  ownerName(g.Owner),
			Title:     g.Name,
			CreatedAt: g.CreateTime,
			DueDate:   g.DueDate,
			Status:    "Incomplete",
		}
		if g.Complete {
			info.Status = "Completed"
		}
		if len(g.Origins) > 0 {
			info.MeetingID = g.Origins[0].ID
			info.MeetingTitle = g.Origins[0].Name
		}
		goals = append(goals, info)
	}
	return goals
}

func archivedGoalsFromWire(data []wireGoal) []ArchivedGoal {
	goals := make([]ArchivedGoal, 0, len(data))
	for _, g := range data {
		status := "Incomplete"
		if g.Complete {
			status = "Complete"
		}
		goals = append(goals, ArchivedGoal{
			ID:        g.ID,
			Title:     g.Name,
			CreatedAt: g.CreateTime,
			DueDate:   g.DueDate,
			Status:    status,
		})
	}
	return goals
}

func createdGoalFromWire(w wireGoal, title string, meetingID, userID int64) CreatedGoal {
	// The create endpoint reports completion as an enum.
	status := "off"
	switch w.Completion {
	case 1:
		status = "on"
	case 2:
		status = "complete"
	}

	goal := CreatedGoal{
		ID:        w.ID,
		UserID:    userID,
		UserName:  ownerName(w.Owner),
		Title:     title,
		MeetingID: meetingID,
		Status:    status,
		CreatedAt: w.CreateTime,
	}
	if len(w.Origins) > 0 {
		goal.MeetingTitle = w.Origins[0].Name
	}
	return goal
}

func issueDetailsFromWire(w wireIssue) IssueDetails {
	return IssueDetails{
		ID:           w.ID,
		Title:        w.Name,
		NotesURL:     w.DetailsURL,
		CreatedAt:    w.CreateTime,
		CompletedAt:  w.CloseTime,
		MeetingID:    w.OriginID,
		MeetingTitle: w.Origin,
		UserID:       ownerID(w.Owner),
		UserName:     ownerName(w.Owner),
	}
}

func issueListFromWire(data []wireIssue) []IssueListItem {
	issues := make([]IssueListItem, 0, len(data))
	for _, w := range data {
		issues = append(issues, IssueListItem{
			ID:           w.ID,
			Title:        w.Name,
			NotesURL:     w.DetailsURL,
			CreatedAt:    w.CreateTime,
			MeetingID:    w.OriginID,
			MeetingTitle: w.Origin,
		})
	}
	return issues
}

func createdIssueFromWire(w wireIssue) CreatedIssue {
	return CreatedIssue{
		ID:           w.ID,
		Title:        w.Name,
		MeetingID:    w.OriginID,
		MeetingTitle: w.Origin,
		UserID:       ownerID(w.Owner),
		NotesURL:     w.DetailsURL,
	}
}

func headlineDetailsFromWire(w wireHeadline) HeadlineDetails {
	return HeadlineDetails{
		ID:             w.ID,
		Title:          w.Name,
		NotesURL:       w.DetailsURL,
		MeetingDetails: MeetingInfo{ID: w.OriginID, Title: w.Origin},
		OwnerDetails:   OwnerDetails{ID: ownerID(w.Owner), Name: ownerName(w.Owner)},
		Archived:       w.Archived,
		CreatedAt:      w.CreateTime,
		ClosedAt:       w.CloseTime,
	}
}

func headlineListFromWire(data []wireHeadline) []HeadlineDetails {
	headlines := make([]HeadlineDetails, 0, len(data))
	for _, w := range data {
		headlines = append(headlines, headlineDetailsFromWire(w))
	}
	return headlines
}

func metricsFromWire(data []wireMeasurable) []MetricInfo {
	metrics := make([]MetricInfo, 0, len(data))
	for _, m := range data {
		// Some measurables come back as placeholder rows.
		if m.ID == 0 || m.Name == "" {
			continue
		}
		metrics = append(metrics, MetricInfo{
			ID:        m.ID,
			Title:     strings.TrimSpace(m.Name),
			Target:    m.Target,
			Operator:  m.Direction,
			Format:    m.Modifiers,
			UserID:    ownerID(m.Owner),
			UserName:  ownerName(m.Owner),
			AdminID:   ownerID(m.Admin),
			AdminName: ownerName(m.Admin),
		})
	}
	return metrics
}

func scorecardItemsFromWire(data []wireScore) []ScorecardItem {
	items := make([]ScorecardItem, 0, len(data))
	for _, s := range data {
		items = append(items, ScorecardItem{
			ID:                s.ID,
			MeasurableID:      s.MeasurableID,
			AccountableUserID: s.AccountableUserID,
			Title:             s.MeasurableName,
			Target:            s.Target,
			Value:             s.Measured,
			Week:              s.Week,
			WeekID:            s.ForWeek,
			UpdatedAt:         s.DateEntered,
		})
	}
	return items
}
