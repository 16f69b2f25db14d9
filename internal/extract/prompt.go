package extract

// BuildVisionPrompt returns the instruction sent alongside a screenshot to
// the vision model.
func BuildVisionPrompt() string {
	return `Analyze this job application screenshot and extract the following information in JSON format:
- company: Company name
- title: Job title/position
- status: One of "applied", "interview", "offer", "rejected"
- date: Application date (format: YYYY-MM-DD, use today's date if not visible)
- notes: Any key highlights, requirements, or important details

Return ONLY valid JSON with these exact field names. If you cannot find certain information, use reasonable defaults or empty strings.`
}
