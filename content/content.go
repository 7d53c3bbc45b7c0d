// Package content is the hard-coded part of the portfolio: everything that
// is not edited through the admin panel.
package content

type Link struct {
	Label string
	URL   string
}

type Hero struct {
	Name     string
	Greeting string
	Roles    []string
	Tagline  string
	Social   []Link
}

type Stat struct {
	Value string
	Label string
}

type About struct {
	Paragraphs []string
	Stats      []Stat
}

type Achievement struct {
	Title       string
	Description string
}

type Profile struct {
	Label string
	URL   string
}

// TimelineItem is one entry of the experience or education timeline.
type TimelineItem struct {
	Title       string
	Place       string
	Period      string
	Description string
}

type Certificate struct {
	Title  string
	Issuer string
	Date   string
	URL    string
}

type ContactInfo struct {
	Label string
	Value string
}

type Site struct {
	Title        string
	Hero         Hero
	About        About
	Achievements []Achievement
	Profiles     []Profile
	Experience   []TimelineItem
	Education    []TimelineItem
	Certificates []Certificate
	Contact      []ContactInfo
	Footer       string
	Nav          []Link
}

// Default returns the site owner's content.
func Default() Site {
	github := "akashray398"
	return Site{
		Title: "Akash Kumar Yadav | Software Developer",
		Nav: []Link{
			{"About", "#about"},
			{"Skills", "#skills"},
			{"Projects", "#projects"},
			{"Experience", "#experience"},
			{"Certificates", "#certificates"},
			{"Contact", "#contact"},
		},
		Hero: Hero{
			Name:     "Akash Kumar Yadav",
			Greeting: "Hi, I'm",
			Roles:    []string{"Software Developer", "MERN Stack Developer", "Java Developer"},
			Tagline:  "I build web applications end to end, from the database to the UI.",
			Social: []Link{
				{"GitHub", "https://github.com/" + github},
				{"LinkedIn", "https://www.linkedin.com/in/akash-yadav-878906286"},
			},
		},
		About: About{
			Paragraphs: []string{
				"I'm an Information Technology student who enjoys turning ideas into working software.",
				"Most of my work is full-stack JavaScript and Java, and I like hackathons, teaching and shipping small tools.",
			},
			Stats: []Stat{
				{"8.15", "CGPA"},
				{"5★", "HackerRank Java"},
				{"10+", "Certificates"},
			},
		},
		Achievements: []Achievement{
			{"Smart India Hackathon 2024", "Participated in SIH 2024, India's largest hackathon"},
			{"Smart India Hackathon 2023", "Participated in SIH 2023 with innovative solutions"},
			{"HackHeist Winner", "Won HackHeist hackathon competition"},
			{"5-Star HackerRank (Java)", "Achieved 5-star rating in Java on HackerRank"},
			{"Logo Design Competition", "Winner of college logo design competition"},
			{"BGMI Esports", "Participated in BGMI Aaveg 2K25 & Eminence tournaments"},
		},
		Profiles: []Profile{
			{"GitHub", "https://github.com/" + github},
			{"LeetCode", "https://leetcode.com/" + github},
		},
		Experience: []TimelineItem{
			{
				Title:       "Placement Ambassador",
				Place:       "Chandigarh Group of Colleges, Landran",
				Period:      "Dec 2025 - Present",
				Description: "Bridging students and the placement cell, relaying opportunities and feedback both ways.",
			},
			{
				Title:       "MERN Stack Developer Training",
				Place:       "Hoping Minds, Mohali",
				Period:      "2024 - 45 Days",
				Description: "Hands-on training in the MERN stack: REST APIs, frontend and backend integration.",
			},
			{
				Title:       "Campus Ambassador",
				Place:       "LaunchED Global",
				Period:      "Sep 2025",
				Description: "Promoting entrepreneurship and innovation among students on campus.",
			},
			{
				Title:       "Event Coordinator",
				Place:       "CGC Landran",
				Period:      "2024 - 2025",
				Description: "Coordinated National Science Day 2024 and Freshers 2025.",
			},
		},
		Education: []TimelineItem{
			{
				Title:       "B.Tech in Information Technology",
				Place:       "Chandigarh Group of Colleges, Landran",
				Period:      "2023 - 2027",
				Description: "Pursuing IT Engineering with 8.15 CGPA.",
			},
			{
				Title:       "Intermediate (12th - BSEB)",
				Place:       "A.S.R.L.S College, Nabiganj Bazar, Siwan",
				Period:      "2020 - 2021",
				Description: "Completed with 71% marks.",
			},
			{
				Title:       "Matriculation (10th - BSEB)",
				Place:       "+2 High School, Nabiganj Bazar, Siwan",
				Period:      "2018 - 2019",
				Description: "Completed with 80% marks.",
			},
		},
		Certificates: []Certificate{
			{Title: "AWS Academy Graduate - Data Engineering", Issuer: "AWS Academy", Date: "November 2023"},
			{Title: "AWS Academy Graduate - Cloud Operations", Issuer: "AWS Academy", Date: "March 2025"},
			{Title: "AWS Academy Graduate - Generative AI Foundations", Issuer: "AWS Academy", Date: "November 2025"},
			{Title: "Software Engineering Job Simulation", Issuer: "Accenture via Forage", Date: "September 2025"},
			{Title: "AI Agents with MongoDB", Issuer: "MongoDB", Date: "August 2025"},
			{Title: "Introduction to Flutter Course", Issuer: "Simplilearn SkillUp", Date: "July 2025"},
			{Title: "GIT, GitLab, GitHub Fundamentals for Software Developers", Issuer: "Udemy", Date: "July 2025"},
			{Title: "Smart India Hackathon 2024 - Team DigiDreamers", Issuer: "CGC College of Engineering", Date: "September 2024"},
		},
		Contact: []ContactInfo{
			{"Location", "Chandigarh, India"},
		},
		Footer: "Akash Kumar Yadav. Built with Go.",
	}
}
