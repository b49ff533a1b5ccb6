package terminal

import "time"

// Output renders a command's lines for the instant it is resolved.
type Output func(now time.Time) []string

// Table is the read-only mapping from command name to its output.
// It is built once and never mutated afterwards.
type Table struct {
	entries map[string]Output
	order   []string
}

// Command pairs a name with its output for table construction.
type Command struct {
	Name   string
	Output Output
}

// NewTable builds a table from commands in declaration order.
// Later duplicates replace earlier ones but keep the first position.
func NewTable(cmds ...Command) *Table {
	t := &Table{entries: make(map[string]Output, len(cmds))}
	for _, c := range cmds {
		if _, ok := t.entries[c.Name]; !ok {
			t.order = append(t.order, c.Name)
		}
		t.entries[c.Name] = c.Output
	}
	return t
}

// Lookup returns a fresh copy of the lines for name, which must already be
// normalized.
func (t *Table) Lookup(name string, now time.Time) ([]string, bool) {
	out, ok := t.entries[name]
	if !ok {
		return nil, false
	}
	lines := out(now)
	cp := make([]string, len(lines))
	copy(cp, lines)
	return cp, true
}

// Names returns the command names in declaration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// Static returns an Output that always yields lines.
func Static(lines ...string) Output {
	return func(time.Time) []string { return lines }
}

// SessionLayout formats the whoami session time.
const SessionLayout = "1/2/2006, 3:04:05 PM"

var defaultTable = NewTable(
	Command{"help", Static(
		"Available commands:",
		"  help          - Show this help message",
		"  about         - Learn about Adarsh",
		"  skills        - View technical skills",
		"  projects      - List recent projects",
		"  experience    - Show work experience",
		"  contact       - Get contact information",
		"  education     - View educational background",
		"  achievements  - List key achievements",
		"  clear         - Clear terminal",
		"  whoami        - Display current user info",
		"",
		"Type any command to get started!",
	)},
	Command{"about", Static(
		"👨‍💻 Adarsh Rangare - Fullstack MERN Developer",
		"",
		"🚀 Passionate developer with 1+ years of experience",
		"🏢 Currently working at Superleap as Frontend Software Engineer",
		"💡 Specialized in React, Node.js, and modern web technologies",
		"🎯 Focus on creating efficient, scalable web applications",
		"",
		`"Code is poetry written in logic" - Adarsh`,
	)},
	Command{"skills", Static(
		"🛠️  Technical Skills:",
		"",
		"Frontend:",
		"  ▸ React.js / Next.js",
		"  ▸ JavaScript / TypeScript",
		"  ▸ HTML5 / CSS3",
		"  ▸ Tailwind CSS",
		"  ▸ Redux / Context API",
		"",
		"Backend:",
		"  ▸ Node.js / Express.js",
		"  ▸ MongoDB / Mongoose",
		"  ▸ RESTful APIs",
		"  ▸ JWT Authentication",
		"",
		"Tools & Others:",
		"  ▸ Git / GitHub",
		"  ▸ VS Code",
		"  ▸ Postman",
		"  ▸ Figma",
	)},
	Command{"projects", Static(
		"📁 Recent Projects:",
		"",
		"1. E-Commerce Platform",
		"   ├─ Tech: React, Node.js, MongoDB",
		"   └─ Features: Payment integration, Admin panel",
		"",
		"2. Task Management App",
		"   ├─ Tech: React, Firebase, Tailwind",
		"   └─ Features: Real-time updates, Collaboration",
		"",
		"3. Blog Platform",
		"   ├─ Tech: Next.js, MongoDB, Express",
		"   └─ Features: Markdown support, CMS",
		"",
		"4. Weather Dashboard",
		"   ├─ Tech: React, Chart.js, APIs",
		"   └─ Features: Interactive maps, Forecasts",
		"",
		"Type 'contact' to discuss a project!",
	)},
	Command{"experience", Static(
		"💼 Work Experience:",
		"",
		"🏢 Frontend Software Engineer @ Superleap",
		"   📅 2023 - Present",
		"   🎯 Building modern web applications",
		"   ⚡ React, Next.js, TypeScript",
		"",
		"💻 Freelance Web Developer",
		"   📅 2022 - 2023",
		"   🎯 Custom web solutions for clients",
		"   ⚡ MERN stack development",
		"",
		"📈 Delivered 15+ successful projects",
	)},
	Command{"contact", Static(
		"📞 Contact Information:",
		"",
		"📧 Email: adarshrangare@example.com",
		"🔗 LinkedIn: linkedin.com/in/adarshrangare",
		"🐙 GitHub: github.com/adarshrangare",
		"📍 Location: India",
		"",
		"💬 Feel free to reach out for:",
		"  ▸ Job opportunities",
		"  ▸ Project collaborations",
		"  ▸ Technical discussions",
		"  ▸ Freelance work",
	)},
	Command{"education", Static(
		"🎓 Educational Background:",
		"",
		"🏫 Bachelor of Technology - Computer Science",
		"   📅 2018 - 2022",
		"   🏆 CGPA: 8.5/10",
		"   🥇 Best Project Award",
		"",
		"💻 Web Development Bootcamp",
		"   📅 2022",
		"   🏆 Top 5% of cohort",
		"   🚀 Built 8+ projects",
	)},
	Command{"achievements", Static(
		"🏆 Key Achievements:",
		"",
		"🚀 Professional:",
		"  ▸ Built 15+ production applications",
		"  ▸ Improved app performance by 40%",
		"  ▸ 100% client satisfaction rate",
		"  ▸ Led UI/UX improvements at Superleap",
		"",
		"🎓 Academic:",
		"  ▸ Best Project Award in college",
		"  ▸ Tech Club President",
		"  ▸ Top 5% in bootcamp",
		"  ▸ Mentored 10+ junior developers",
	)},
	Command{"whoami", func(now time.Time) []string {
		return []string{
			"guest@adarsh-portfolio:~$ whoami",
			"",
			"👋 You are a visitor exploring Adarsh's portfolio",
			"🌟 Welcome to the interactive terminal!",
			"💡 Use 'help' to see available commands",
			"",
			"Current session: " + now.Format(SessionLayout),
		}
	}},
)

// DefaultTable returns the portfolio's process-wide command table.
func DefaultTable() *Table {
	return defaultTable
}

// WelcomeLines is the banner shown before any command has been run.
var WelcomeLines = []string{
	"🚀 Welcome to Adarsh's Interactive Terminal!",
	"",
	"Type 'help' to see available commands.",
	"Explore my skills, projects, and experience through terminal commands.",
	"",
}
