package main

// Section content for the portfolio page.

var (
	Name = "Adarsh Rangare"

	Title = "Fullstack MERN Developer"

	Tagline = `I build efficient, scalable web applications with React, Node.js and
	the rest of the modern JavaScript toolbox.`

	AboutMe = `Passionate developer with 1+ years of experience, currently working at Superleap
	as a Frontend Software Engineer. I care about interfaces that feel fast and code that stays
	readable. "Code is poetry written in logic."`

	Skills = map[string][]string{
		"Frontend": {"React.js / Next.js", "JavaScript / TypeScript", "HTML5 / CSS3", "Tailwind CSS", "Redux / Context API"},
		"Backend":  {"Node.js / Express.js", "MongoDB / Mongoose", "RESTful APIs", "JWT Authentication"},
		"Tools":    {"Git / GitHub", "VS Code", "Postman", "Figma"},
	}
)

type Job struct {
	Role    string
	Company string
	Period  string
	Points  []string
}

var Experience = []Job{
	{
		Role:    "Frontend Software Engineer",
		Company: "Superleap",
		Period:  "2023 - Present",
		Points:  []string{"Building modern web applications", "React, Next.js, TypeScript", "Led UI/UX improvements"},
	},
	{
		Role:    "Freelance Web Developer",
		Company: "Self-employed",
		Period:  "2022 - 2023",
		Points:  []string{"Custom web solutions for clients", "MERN stack development", "Delivered 15+ successful projects"},
	},
}

type Project struct {
	Name     string
	Tech     string
	Features string
}

var Projects = []Project{
	{"E-Commerce Platform", "React, Node.js, MongoDB", "Payment integration, Admin panel"},
	{"Task Management App", "React, Firebase, Tailwind", "Real-time updates, Collaboration"},
	{"Blog Platform", "Next.js, MongoDB, Express", "Markdown support, CMS"},
	{"Weather Dashboard", "React, Chart.js, APIs", "Interactive maps, Forecasts"},
}
