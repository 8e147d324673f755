// Package samples holds the built-in catalog of sample job descriptions the
// CLI offers when the user has no job posting at hand.
package samples

import "strings"

// Job is one sample job description.
type Job struct {
	Title       string
	Category    string
	Description string
}

// Category display names.
const (
	CategoryTechnology = "Technology"
	CategoryDesign     = "Design & Creative"
	CategoryBusiness   = "Business & Management"
	CategoryMarketing  = "Marketing & Sales"
)

// Categories returns the category names in display order.
func Categories() []string {
	return []string{CategoryTechnology, CategoryDesign, CategoryBusiness, CategoryMarketing}
}

// Catalog returns every sample job in stable display order.
func Catalog() []Job {
	return catalog
}

// Find returns the sample with the given title, matched case-insensitively.
func Find(title string) (Job, bool) {
	title = strings.TrimSpace(title)
	for _, job := range catalog {
		if strings.EqualFold(job.Title, title) {
			return job, true
		}
	}
	return Job{}, false
}

// ByCategory returns the samples of one category in catalog order.
func ByCategory(category string) []Job {
	var out []Job
	for _, job := range catalog {
		if job.Category == category {
			out = append(out, job)
		}
	}
	return out
}

// Titles returns every sample title in catalog order.
func Titles() []string {
	out := make([]string, 0, len(catalog))
	for _, job := range catalog {
		out = append(out, job.Title)
	}
	return out
}

var catalog = []Job{
	{
		Title:       "Software Engineer",
		Category:    CategoryTechnology,
		Description: "We are seeking a skilled Software Engineer to join our development team. The ideal candidate will have experience with Python, JavaScript, React, Node.js, and SQL databases. You should be familiar with agile development methodologies, version control systems like Git, and cloud platforms such as AWS or Azure. Experience with Docker, Kubernetes, and CI/CD pipelines is a plus. Strong problem-solving skills and ability to work in a collaborative environment are essential.",
	},
	{
		Title:       "Data Scientist",
		Category:    CategoryTechnology,
		Description: "Looking for a Data Scientist with expertise in machine learning, statistical analysis, and data visualization. Required skills include Python, R, SQL, pandas, scikit-learn, TensorFlow, and Tableau. Experience with big data technologies like Spark, Hadoop, and cloud platforms (AWS, GCP, Azure) is preferred. Strong background in statistics, mathematics, and experience with A/B testing and predictive modeling.",
	},
	{
		Title:       "DevOps Engineer",
		Category:    CategoryTechnology,
		Description: "Seeking a DevOps Engineer with experience in infrastructure automation, containerization, and cloud technologies. Required skills include Docker, Kubernetes, Jenkins, Terraform, AWS/Azure/GCP, Linux, and scripting languages (Python, Bash). Experience with monitoring tools, CI/CD pipelines, and infrastructure as code.",
	},
	{
		Title:       "Cybersecurity Analyst",
		Category:    CategoryTechnology,
		Description: "Looking for a Cybersecurity Analyst to protect our organization's digital assets. Experience with security frameworks, threat analysis, incident response, and vulnerability assessment. Knowledge of firewalls, SIEM tools, penetration testing, and compliance standards (ISO 27001, NIST). Security certifications preferred.",
	},
	{
		Title:       "Mobile App Developer",
		Category:    CategoryTechnology,
		Description: "Looking for a Mobile App Developer with experience in iOS and Android development. Proficiency in Swift, Kotlin, React Native, or Flutter. Experience with mobile UI/UX principles, API integration, and app store deployment. Knowledge of mobile testing frameworks and performance optimization.",
	},
	{
		Title:       "Cloud Architect",
		Category:    CategoryTechnology,
		Description: "Seeking a Cloud Architect to design and implement cloud infrastructure solutions. Expertise in AWS, Azure, or GCP services. Experience with microservices architecture, serverless computing, and cloud security. Strong background in system design and scalability planning.",
	},
	{
		Title:       "Quality Assurance Engineer",
		Category:    CategoryTechnology,
		Description: "We need a QA Engineer with experience in manual and automated testing. Proficiency in testing frameworks, bug tracking tools, and test case design. Experience with Selenium, API testing, and performance testing. Strong attention to detail and analytical skills.",
	},
	{
		Title:       "Machine Learning Engineer",
		Category:    CategoryTechnology,
		Description: "Looking for an ML Engineer with experience in deploying machine learning models to production. Proficiency in Python, TensorFlow, PyTorch, and MLOps tools. Experience with model optimization, A/B testing, and cloud ML platforms. Strong software engineering background.",
	},
	{
		Title:       "Network Administrator",
		Category:    CategoryTechnology,
		Description: "Seeking a Network Administrator to manage and maintain network infrastructure. Experience with routers, switches, firewalls, and network protocols. Knowledge of network security, troubleshooting, and performance monitoring. Relevant certifications preferred.",
	},
	{
		Title:       "Database Administrator",
		Category:    CategoryTechnology,
		Description: "Looking for a DBA with experience in database design, optimization, and maintenance. Proficiency in SQL, database management systems (MySQL, PostgreSQL, Oracle), and backup/recovery procedures. Experience with performance tuning and security management.",
	},
	{
		Title:       "UX/UI Designer",
		Category:    CategoryDesign,
		Description: "Looking for a creative UX/UI Designer with experience in user-centered design, wireframing, prototyping, and visual design. Proficiency in Figma, Sketch, Adobe Creative Suite, and design systems. Experience with user research, usability testing, and responsive design. Strong portfolio demonstrating mobile and web design projects.",
	},
	{
		Title:       "Graphic Designer",
		Category:    CategoryDesign,
		Description: "Looking for a creative Graphic Designer with expertise in brand design, print design, and digital graphics. Proficiency in Adobe Creative Suite, typography, and color theory. Strong portfolio showcasing diverse design projects and brand identity work.",
	},
	{
		Title:       "Content Writer",
		Category:    CategoryDesign,
		Description: "We are hiring a Content Writer to create engaging content across multiple channels. Experience with SEO writing, blog posts, social media content, and email marketing. Strong research skills and ability to adapt writing style for different audiences. Knowledge of content management systems and analytics tools.",
	},
	{
		Title:       "Technical Writer",
		Category:    CategoryDesign,
		Description: "Seeking a Technical Writer to create clear and comprehensive documentation. Experience with API documentation, user manuals, and technical guides. Strong writing skills and ability to translate complex technical concepts into user-friendly content.",
	},
	{
		Title:       "Product Manager",
		Category:    CategoryBusiness,
		Description: "Seeking an experienced Product Manager to drive product strategy and roadmap. Ideal candidate has experience with product lifecycle management, user research, market analysis, and cross-functional team leadership. Familiarity with agile methodologies, JIRA, analytics tools, and customer feedback systems. Strong communication skills and ability to translate business requirements into technical specifications.",
	},
	{
		Title:       "Business Analyst",
		Category:    CategoryBusiness,
		Description: "We are hiring a Business Analyst to bridge the gap between business needs and technical solutions. Experience with requirements gathering, process mapping, data analysis, and stakeholder management. Proficiency in SQL, Excel, Tableau, and project management tools. Strong analytical and communication skills required.",
	},
	{
		Title:       "Project Manager",
		Category:    CategoryBusiness,
		Description: "Seeking an experienced Project Manager with PMP certification. Experience with project planning, resource management, risk assessment, and stakeholder communication. Proficiency in project management tools like Microsoft Project, JIRA, and Asana. Strong leadership and organizational skills.",
	},
	{
		Title:       "Operations Manager",
		Category:    CategoryBusiness,
		Description: "Seeking an Operations Manager to optimize business processes and improve efficiency. Experience with process improvement, supply chain management, and team leadership. Strong analytical skills and experience with operational metrics and KPIs.",
	},
	{
		Title:       "Human Resources Manager",
		Category:    CategoryBusiness,
		Description: "We need an HR Manager to oversee recruitment, employee relations, and HR policies. Experience with HRIS systems, talent acquisition, performance management, and employment law. Strong interpersonal skills and experience with diversity and inclusion initiatives.",
	},
	{
		Title:       "Financial Analyst",
		Category:    CategoryBusiness,
		Description: "Looking for a Financial Analyst with expertise in financial modeling, budgeting, and forecasting. Proficiency in Excel, SQL, and financial software. Experience with variance analysis, financial reporting, and investment analysis. CFA or similar certification preferred.",
	},
	{
		Title:       "Digital Marketing Manager",
		Category:    CategoryMarketing,
		Description: "We need a Digital Marketing Manager with expertise in SEO, SEM, social media marketing, content marketing, and email campaigns. Experience with Google Analytics, Google Ads, Facebook Ads, HubSpot, and marketing automation tools. Strong analytical skills and experience with A/B testing, conversion optimization, and ROI analysis.",
	},
	{
		Title:       "Sales Representative",
		Category:    CategoryMarketing,
		Description: "Seeking a motivated Sales Representative to drive revenue growth. Experience with CRM systems, lead generation, cold calling, and relationship building. Strong negotiation skills and track record of meeting sales targets. Knowledge of sales methodologies and customer acquisition strategies.",
	},
	{
		Title:       "Social Media Manager",
		Category:    CategoryMarketing,
		Description: "We need a Social Media Manager to develop and execute social media strategies. Experience with content creation, community management, and social media analytics. Proficiency in social media platforms and scheduling tools. Strong creative and analytical skills.",
	},
	{
		Title:       "Customer Success Manager",
		Category:    CategoryMarketing,
		Description: "We are hiring a Customer Success Manager to ensure customer satisfaction and retention. Experience with customer onboarding, account management, and relationship building. Strong communication skills and experience with CRM systems and customer analytics.",
	},
}
