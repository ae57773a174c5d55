// Package catalog holds the static lookup tables for skills and social
// platforms. The tables are package-level values built once at init and
// never mutated; callers receive copies.
package catalog

import "strings"

// Skill is a selectable technology with its devicon image.
type Skill struct {
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}

// Social describes a supported social platform.
type Social struct {
	ID          string `json:"id"          yaml:"id"`
	Label       string `json:"label"       yaml:"label"`
	Icon        string `json:"icon"        yaml:"icon"`
	Color       string `json:"color"       yaml:"color"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
}

const deviconBase = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/"

// devicon builds a devicon CDN URL from its directory and file name.
func devicon(dir, file string) string {
	return deviconBase + dir + "/" + file + ".svg"
}

var skills = []Skill{
	// Frontend
	{"HTML", devicon("html5", "html5-original")},
	{"CSS", devicon("css3", "css3-original")},
	{"JavaScript", devicon("javascript", "javascript-original")},
	{"TypeScript", devicon("typescript", "typescript-original")},
	{"React", devicon("react", "react-original")},
	{"Vue.js", devicon("vuejs", "vuejs-original")},
	{"Angular", devicon("angularjs", "angularjs-original")},
	{"Svelte", devicon("svelte", "svelte-original")},
	{"Next.js", devicon("nextjs", "nextjs-original")},
	{"Nuxt.js", devicon("nuxtjs", "nuxtjs-original")},
	{"TailwindCSS", devicon("tailwindcss", "tailwindcss-plain")},
	{"Bootstrap", devicon("bootstrap", "bootstrap-original")},
	{"Sass", devicon("sass", "sass-original")},
	{"Less", devicon("less", "less-plain-wordmark")},
	{"Material-UI", devicon("materialui", "materialui-original")},
	{"Webpack", devicon("webpack", "webpack-original")},
	{"Vite", devicon("vitejs", "vitejs-original")},

	// Backend
	{"Node.js", devicon("nodejs", "nodejs-original")},
	{"Express", devicon("express", "express-original")},
	{"Fastify", devicon("fastify", "fastify-original")},

	// Languages
	{"Python", devicon("python", "python-original")},
	{"Java", devicon("java", "java-original")},
	{"C", devicon("c", "c-original")},
	{"C++", devicon("cplusplus", "cplusplus-original")},
	{"C#", devicon("csharp", "csharp-original")},
	{"Go", devicon("go", "go-original")},
	{"Rust", devicon("rust", "rust-plain")},
	{"PHP", devicon("php", "php-original")},
	{"Ruby", devicon("ruby", "ruby-original")},
	{"Swift", devicon("swift", "swift-original")},
	{"Kotlin", devicon("kotlin", "kotlin-original")},
	{"Dart", devicon("dart", "dart-original")},
	{"Scala", devicon("scala", "scala-original")},
	{"Elixir", devicon("elixir", "elixir-original")},
	{"Haskell", devicon("haskell", "haskell-original")},
	{"Clojure", devicon("clojure", "clojure-original")},
	{"R", devicon("r", "r-original")},
	{"MATLAB", devicon("matlab", "matlab-original")},

	// Python, Java, .NET, PHP and Ruby frameworks
	{"Django", devicon("django", "django-plain")},
	{"Flask", devicon("flask", "flask-original")},
	{"FastAPI", devicon("fastapi", "fastapi-original")},
	{"Spring", devicon("spring", "spring-original")},
	{"Spring Boot", devicon("spring", "spring-original")},
	{".NET", devicon("dot-net", "dot-net-original")},
	{"ASP.NET", devicon("dot-net", "dot-net-original")},
	{"Laravel", devicon("laravel", "laravel-plain")},
	{"Symfony", devicon("symfony", "symfony-original")},
	{"Ruby on Rails", devicon("rails", "rails-original-wordmark")},

	// Mobile
	{"React Native", devicon("react", "react-original")},
	{"Flutter", devicon("flutter", "flutter-original")},
	{"Ionic", devicon("ionic", "ionic-original")},
	{"Xamarin", devicon("xamarin", "xamarin-original")},

	// Databases
	{"MySQL", devicon("mysql", "mysql-original")},
	{"PostgreSQL", devicon("postgresql", "postgresql-original")},
	{"MongoDB", devicon("mongodb", "mongodb-original")},
	{"Redis", devicon("redis", "redis-original")},
	{"SQLite", devicon("sqlite", "sqlite-original")},
	{"Oracle", devicon("oracle", "oracle-original")},
	{"Cassandra", devicon("cassandra", "cassandra-original")},
	{"Neo4j", devicon("neo4j", "neo4j-original")},

	// Cloud and DevOps
	{"AWS", devicon("amazonwebservices", "amazonwebservices-original")},
	{"GCP", devicon("googlecloud", "googlecloud-original")},
	{"Azure", devicon("azure", "azure-original")},
	{"Docker", devicon("docker", "docker-original")},
	{"Kubernetes", devicon("kubernetes", "kubernetes-plain")},
	{"Terraform", devicon("terraform", "terraform-original")},
	{"Ansible", devicon("ansible", "ansible-original")},
	{"Jenkins", devicon("jenkins", "jenkins-original")},
	{"GitLab CI", devicon("gitlab", "gitlab-original")},
	{"GitHub Actions", devicon("github", "github-original")},

	// Version control
	{"Git", devicon("git", "git-original")},
	{"GitHub", devicon("github", "github-original")},
	{"GitLab", devicon("gitlab", "gitlab-original")},
	{"Bitbucket", devicon("bitbucket", "bitbucket-original")},

	// Operating systems
	{"Linux", devicon("linux", "linux-original")},
	{"Ubuntu", devicon("ubuntu", "ubuntu-plain")},
	{"CentOS", devicon("centos", "centos-original")},
	{"Windows", devicon("windows8", "windows8-original")},

	// Data science
	{"TensorFlow", devicon("tensorflow", "tensorflow-original")},
	{"PyTorch", devicon("pytorch", "pytorch-original")},
	{"Pandas", devicon("pandas", "pandas-original")},
	{"NumPy", devicon("numpy", "numpy-original")},
	{"Jupyter", devicon("jupyter", "jupyter-original")},

	// APIs
	{"GraphQL", devicon("graphql", "graphql-plain")},
	{"Apollo", devicon("apollographql", "apollographql-original")},

	// Build tools
	{"npm", devicon("npm", "npm-original-wordmark")},
	{"Yarn", devicon("yarn", "yarn-original")},
	{"Gradle", devicon("gradle", "gradle-plain")},
	{"Maven", devicon("maven", "maven-original")},

	// Testing
	{"Jest", devicon("jest", "jest-plain")},
	{"Cypress", devicon("cypress", "cypress-original")},
	{"Selenium", devicon("selenium", "selenium-original")},

	// Editors
	{"VS Code", devicon("vscode", "vscode-original")},
	{"IntelliJ", devicon("intellij", "intellij-original")},
	{"Vim", devicon("vim", "vim-original")},

	// Message brokers
	{"Apache Kafka", devicon("apachekafka", "apachekafka-original")},
	{"RabbitMQ", devicon("rabbitmq", "rabbitmq-original")},

	// Other
	{"Electron", devicon("electron", "electron-original")},
	{"Unity", devicon("unity", "unity-original")},
	{"Unreal Engine", devicon("unrealengine", "unrealengine-original")},
}

var socials = []Social{
	{ID: "github", Label: "GitHub Username", Icon: devicon("github", "github-original"), Color: "#333"},
	{ID: "linkedin", Label: "LinkedIn URL", Icon: devicon("linkedin", "linkedin-original"), Color: "#0077B5"},
	{ID: "twitter", Label: "Twitter/X URL", Icon: devicon("twitter", "twitter-original"), Color: "#1DA1F2"},
	{ID: "website", Label: "Website/Portfolio", Icon: "🌐", Color: "#666"},
	{ID: "email", Label: "Email", Icon: "📧", Color: "#D44638"},
	{ID: "instagram", Label: "Instagram URL", Icon: devicon("instagram", "instagram-original"), Color: "#E4405F"},
	{ID: "medium", Label: "Medium URL", Icon: "https://cdn.jsdelivr.net/npm/simple-icons@v9/icons/medium.svg", Color: "#12100E"},
}

// badgeLabels and badgeLogos drive the shields.io badges in the socials section.
var (
	badgeLabels = map[string]string{
		"github":    "GitHub",
		"linkedin":  "LinkedIn",
		"twitter":   "X",
		"instagram": "Instagram",
		"medium":    "Medium",
		"website":   "Website",
		"email":     "Email",
	}
	badgeLogos = map[string]string{
		"github":    "github",
		"linkedin":  "linkedin",
		"twitter":   "x",
		"instagram": "instagram",
		"medium":    "medium",
		"website":   "globe",
		"email":     "gmail",
	}
)

// skillLinks maps lowercased skill names to their canonical reference pages.
var skillLinks = map[string]string{
	"html":       "https://developer.mozilla.org/docs/Web/HTML",
	"css":        "https://developer.mozilla.org/docs/Web/CSS",
	"javascript": "https://developer.mozilla.org/docs/Web/JavaScript",
	"typescript": "https://www.typescriptlang.org/",
	"react":      "https://react.dev/",
	"vue.js":     "https://vuejs.org/",
	"angular":    "https://angular.dev/",
	"svelte":     "https://svelte.dev/",
	"node.js":    "https://nodejs.org/",
	"python":     "https://www.python.org/",
	"java":       "https://www.oracle.com/java/",
	"rust":       "https://www.rust-lang.org/",
	"go":         "https://go.dev/",
	"php":        "https://www.php.net/",
	"kotlin":     "https://kotlinlang.org/",
	"swift":      "https://developer.apple.com/swift/",
	"mysql":      "https://www.mysql.com/",
	"postgresql": "https://www.postgresql.org/",
	"mongodb":    "https://www.mongodb.com/",
	"docker":     "https://www.docker.com/",
}

var (
	skillIcons = indexSkills(skills)
	socialByID = indexSocials(socials)
)

func indexSkills(list []Skill) map[string]string {
	index := make(map[string]string, len(list))
	for _, s := range list {
		index[s.Name] = s.Icon
	}
	return index
}

func indexSocials(list []Social) map[string]Social {
	index := make(map[string]Social, len(list))
	for _, s := range list {
		index[s.ID] = s
	}
	return index
}

// Skills returns the skill table in display order.
func Skills() []Skill {
	out := make([]Skill, len(skills))
	copy(out, skills)
	return out
}

// SkillNames returns the skill names in display order.
func SkillNames() []string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return names
}

// SkillIcon returns the icon URL for an exact skill name.
func SkillIcon(name string) (string, bool) {
	icon, ok := skillIcons[name]
	return icon, ok
}

// SkillLink returns the canonical reference page for a skill, matched
// case-insensitively. The second result is false when no page is known.
func SkillLink(name string) (string, bool) {
	link, ok := skillLinks[strings.ToLower(name)]
	return link, ok
}

// Socials returns the social platform table in its fixed order.
func Socials() []Social {
	out := make([]Social, len(socials))
	copy(out, socials)
	return out
}

// SocialKeys returns the platform keys in their fixed order.
func SocialKeys() []string {
	keys := make([]string, len(socials))
	for i, s := range socials {
		keys[i] = s.ID
	}
	return keys
}

// LookupSocial returns the platform config for key.
func LookupSocial(key string) (Social, bool) {
	s, ok := socialByID[key]
	return s, ok
}

// BadgeLabel returns the badge text for a platform, falling back to the
// capitalized key.
func BadgeLabel(key string) string {
	if label, ok := badgeLabels[key]; ok {
		return label
	}
	return capitalize(key)
}

// BadgeLogo returns the shields.io logo slug for a platform, falling back to
// the key itself.
func BadgeLogo(key string) string {
	if logo, ok := badgeLogos[key]; ok {
		return logo
	}
	return key
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
