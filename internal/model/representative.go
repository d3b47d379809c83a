package model

// Conversations holds up to three links to recorded role-play conversations.
type Conversations struct {
	Conv1 string `json:"conv1,omitempty"`
	Conv2 string `json:"conv2,omitempty"`
	Conv3 string `json:"conv3,omitempty"`
}

// Representative is a sales agent tracked by the dashboard.
// FullName is the canonical display and match form; FirstName/LastName
// are derived from it on creation.
type Representative struct {
	ID                     string         `json:"id"`
	FirstName              string         `json:"firstName"`
	LastName               string         `json:"lastName"`
	FullName               string         `json:"fullName"`
	SuccessRate            float64        `json:"successRate"`    // 0-100
	CourseProgress         int            `json:"courseProgress"` // 0-100
	TrainingCompletionDate string         `json:"trainingCompletionDate,omitempty"`
	ProfileURL             string         `json:"profileUrl,omitempty"`
	Conversations          *Conversations `json:"conversations,omitempty"`
	Notes                  string         `json:"notes,omitempty"`
}
