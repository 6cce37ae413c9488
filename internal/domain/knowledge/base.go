// Package knowledge holds the static domain taxonomy and the keyword
// expansion operations built on it. The table maps broad study domains to
// the specific skills and technologies associated with them; it is fixed at
// compile time and safe for unsynchronized concurrent reads.
package knowledge

import "strings"

// base maps a lowercase domain name to its lowercase keywords. A keyword may
// appear under more than one domain (e.g. "linux").
var base = map[string][]string{
	"web": {
		"html", "html5", "css", "css3", "javascript", "js", "es6", "typescript", "ts",
		"react", "reactjs", "vue", "vuejs", "angular", "svelte", "nextjs", "nuxtjs",
		"tailwind", "bootstrap", "material ui",
		"node", "nodejs", "express", "django", "flask", "fastapi", "spring boot",
		"laravel", "php", "ruby on rails", "sql",
		"frontend", "backend", "fullstack", "api", "rest", "graphql", "websockets",
		"pwa", "npm", "yarn", "webpack",
	},
	"game": {
		"unity", "unreal engine", "unreal", "godot", "gamemaker", "cryengine",
		"c#", "c++", "lua", "blueprint",
		"gamedev", "level design", "shaders", "vfx", "physics", "rendering",
		"3d modeling", "blender", "maya",
		"sprite", "animation", "multiplayer", "npc", "navmesh", "raytracing",
		"opengl", "vulkan", "directx",
	},
	"ai": {
		"artificial intelligence", "ml", "machine learning", "dl", "deep learning",
		"neural networks", "python",
		"tensorflow", "pytorch", "keras", "scikit-learn", "sklearn", "pandas",
		"numpy", "opencv", "huggingface",
		"nlp", "computer vision", "reinforcement learning", "gan", "llm", "gpt",
		"transformer", "bert", "diffusion models",
		"chatbot", "predictive", "data science", "algorithm", "model training",
		"dataset", "supervised", "unsupervised",
	},
	"cybersecurity": {
		"hacking", "ethical hacking", "penetration testing", "pentest", "red team",
		"blue team", "soc", "ciso",
		"firewall", "vpn", "network", "network security", "wireshark", "nmap",
		"packet tracer", "tcp/ip", "dns",
		"crypto", "cryptography", "encryption", "malware", "ransomware", "phishing",
		"social engineering", "exploit",
		"vulnerability", "bug bounty", "owasp", "kali linux", "linux", "metasploit",
		"zero day", "auth", "oauth", "jwt", "security",
	},
	"cloud": {
		"aws", "amazon web services", "azure", "gcp", "google cloud", "digitalocean",
		"heroku", "vercel", "netlify",
		"docker", "kubernetes", "k8s", "container", "podman",
		"devops", "ci/cd", "pipeline", "serverless", "lambda", "microservices",
		"terraform", "ansible", "jenkins",
		"linux", "bash", "shell", "scalability", "load balancing", "cdn", "s3", "ec2",
	},
	"dsa": {
		"array", "linked list", "stack", "queue", "hash map", "hash table", "tree",
		"binary tree", "bst", "heap", "graph", "trie",
		"sorting", "searching", "recursion", "dynamic programming", "dp", "greedy",
		"backtracking", "divide and conquer",
		"leetcode", "codeforces", "hackerrank", "competitive programming", "cp",
		"big o", "time complexity", "space complexity",
		"binary search", "dfs", "bfs", "dijkstra", "prim", "kruskal",
		"interview prep", "coding interview",
	},
	"app": {
		"mobile", "ios", "android", "flutter", "react native", "swift", "kotlin",
	},
}

// reverse maps each keyword to the domains it appears under.
// Built once at package load from base.
var reverse = buildReverse()

func buildReverse() map[string][]string {
	rev := make(map[string][]string)
	for name, keywords := range base {
		for _, kw := range keywords {
			rev[kw] = append(rev[kw], name)
		}
	}
	return rev
}

// KeywordsOf returns the keywords of a broad domain, or ok=false if the name
// is not a known domain. Absence is a normal outcome, not an error.
// The returned slice is shared; callers must not mutate it.
func KeywordsOf(domain string) ([]string, bool) {
	kws, ok := base[strings.ToLower(strings.TrimSpace(domain))]
	return kws, ok
}

// DomainsContaining returns every domain name whose keyword list contains
// keyword. Empty when the keyword is unknown.
func DomainsContaining(keyword string) []string {
	return reverse[strings.ToLower(strings.TrimSpace(keyword))]
}

// Domains returns the names of all known domains.
func Domains() []string {
	names := make([]string, 0, len(base))
	for name := range base {
		names = append(names, name)
	}
	return names
}
