package insight

type InsightRequest struct {
	Topic        Topic  `json:"topic"`
	EmployeeName string `json:"employee_name,omitempty"`
}

type InsightResponse struct {
	Topic Topic  `json:"topic"`
	Text  string `json:"text"`
}
