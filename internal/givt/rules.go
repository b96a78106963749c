package givt

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultKnownBots are crawler user-agent tokens of search engines and
// social networks. They are matched case-insensitively as substrings.
var defaultKnownBots = []string{
	"googlebot",
	"adsbot-google",
	"mediapartners-google",
	"bingbot",
	"slurp",
	"duckduckbot",
	"baiduspider",
	"yandexbot",
	"sogou",
	"exabot",
	"facebot",
	"facebookexternalhit",
	"twitterbot",
	"linkedinbot",
	"slackbot",
	"discordbot",
	"telegrambot",
	"whatsapp",
	"applebot",
	"petalbot",
	"semrushbot",
	"ahrefsbot",
}

// defaultAutomationPatterns flag generic automation and HTTP libraries.
var defaultAutomationPatterns = []string{
	`bot\b`,
	`crawler`,
	`spider`,
	`headless`,
	`phantomjs`,
	`selenium`,
	`puppeteer`,
	`playwright`,
	`^curl/`,
	`^wget/`,
	`python-requests`,
	`python-urllib`,
	`aiohttp`,
	`go-http-client`,
	`java/`,
	`okhttp`,
	`apache-httpclient`,
	`axios/`,
	`node-fetch`,
	`libwww-perl`,
	`scrapy`,
	`httpclient`,
}

// Rules are the user-agent signals. They can be extended from a YAML file:
//
//	known_bots: [mybot]
//	patterns: ['^internal-probe/']
type Rules struct {
	KnownBots []string `yaml:"known_bots"`
	Patterns  []string `yaml:"patterns"`
}

// DefaultRules returns the built-in rule set.
func DefaultRules() Rules {
	return Rules{
		KnownBots: append([]string(nil), defaultKnownBots...),
		Patterns:  append([]string(nil), defaultAutomationPatterns...),
	}
}

// LoadRules reads additional rules from path and merges them into the
// defaults. An empty path returns the defaults.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("read givt rules: %w", err)
	}
	var extra Rules
	if err = yaml.Unmarshal(data, &extra); err != nil {
		return rules, fmt.Errorf("parse givt rules: %w", err)
	}
	rules.KnownBots = append(rules.KnownBots, extra.KnownBots...)
	rules.Patterns = append(rules.Patterns, extra.Patterns...)
	return rules, nil
}

type matcher struct {
	known   []string
	pattern *regexp.Regexp
}

func (r Rules) compile() (*matcher, error) {
	m := &matcher{}
	for _, b := range r.KnownBots {
		if b = strings.ToLower(strings.TrimSpace(b)); b != "" {
			m.known = append(m.known, b)
		}
	}
	if len(r.Patterns) > 0 {
		re, err := regexp.Compile(`(?i)(?:` + strings.Join(r.Patterns, `)|(?:`) + `)`)
		if err != nil {
			return nil, fmt.Errorf("compile givt patterns: %w", err)
		}
		m.pattern = re
	}
	return m, nil
}

// userAgent classifies ua. The empty user agent is itself suspicious.
func (m *matcher) userAgent(ua string) (Signal, bool) {
	ua = strings.TrimSpace(ua)
	if ua == "" {
		return SignalEmptyUserAgent, true
	}
	lower := strings.ToLower(ua)
	for _, b := range m.known {
		if strings.Contains(lower, b) {
			return SignalKnownBot, true
		}
	}
	if m.pattern != nil && m.pattern.MatchString(ua) {
		return SignalAutomation, true
	}
	return SignalNone, false
}
