package assistant

import "strings"

// bucket pairs a keyword set with its canned reply.
type bucket struct {
	keywords []string
	reply    string
}

// fallbackBuckets is checked in order; the first bucket with a matching
// keyword wins, so earlier buckets take priority on overlapping inputs.
var fallbackBuckets = []bucket{
	{
		keywords: []string{"skill", "technology", "tech"},
		reply:    "Najim is proficient in React, TypeScript, Node.js, Python, Django, PostgreSQL, and modern web technologies. He has experience in full-stack development. His expertise includes building scalable web applications, RESTful APIs, and creating intuitive user interfaces.",
	},
	{
		keywords: []string{"project", "work", "portfolio"},
		reply:    "Najim has completed 15+ projects including a car insurance premium scorecard, a job portal app, web applications, and API services. His notable work includes a doctor appointment booking system and various web apps built with React.",
	},
	{
		keywords: []string{"experience", "background", "career"},
		reply:    "Najim has professional experience as a Full-Stack Developer. He worked at Oasis Infobyte as a web developer intern, building practical web solutions on real-world projects and strengthening technical skills through active, project-based learning.",
	},
	{
		keywords: []string{"contact", "hire", "available", "email"},
		reply:    "Najim is currently available for new opportunities! You can reach him at najimtadvi09@gmail.com or call +91 7249098780. He's based in Pune, Maharashtra. He offers free consultations and typically responds within 24 hours.",
	},
	{
		keywords: []string{"education", "learn", "study"},
		reply:    "Najim is a continuous learner who stays updated with the latest technologies. He regularly contributes to open-source projects, attends tech conferences, and shares knowledge with the developer community. His learning approach combines hands-on projects with theoretical understanding.",
	},
	{
		keywords: []string{"price", "cost", "rate", "budget"},
		reply:    "Najim offers competitive rates based on project scope and requirements. He provides detailed quotes after understanding your specific needs. For accurate pricing, please contact him directly at najimtadvi09@gmail.com with your project details.",
	},
	{
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hello! I'm Najim's AI assistant. I'm here to help you learn more about his skills, experience, and projects. Feel free to ask me anything about his work, availability, or technical expertise!",
	},
	{
		keywords: []string{"thank", "thanks"},
		reply:    "You're welcome! If you have any other questions about Najim's work or would like to get in touch with him, feel free to ask. I'm here to help!",
	},
}

// fallbackDefault is returned when no bucket matches.
const fallbackDefault = "I'd be happy to help you learn more about Najim! You can ask me about his technical skills, project experience, work background, or how to get in touch with him. What would you like to know?"

// Respond maps a visitor utterance to a canned answer by case-insensitive
// keyword matching. Total and deterministic: it never fails, performs no I/O,
// and always returns a non-empty string.
func Respond(input string) string {
	lower := strings.ToLower(input)
	for _, b := range fallbackBuckets {
		for _, kw := range b.keywords {
			if strings.Contains(lower, kw) {
				return b.reply
			}
		}
	}
	return fallbackDefault
}
