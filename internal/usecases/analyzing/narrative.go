package analyzing

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/adgenius/adgenius-api/internal/domain"
)

// Expressões usadas nas heurísticas de conteúdo do anúncio.
var (
	digitPattern       = regexp.MustCompile(`\d`)
	urgencyPattern     = regexp.MustCompile(`(?i)(now|today|limited|urgent|quick|fast)`)
	ctaPattern         = regexp.MustCompile(`(?i)(buy|shop|get|order|click|learn|sign|start)`)
	benefitPattern     = regexp.MustCompile(`(?i)(save|earn|gain|improve|better|best|quality)`)
	socialProofPattern = regexp.MustCompile(`(?i)(customers|users|people|reviews|testimonials)`)
)

// buildNarrative monta o relatório em markdown com as seções de métricas,
// conteúdo, fatores de sucesso, insights de plataforma, recomendações e
// posicionamento competitivo. A narrativa é gerada em inglês, mesmo idioma
// do conteúdo dos anúncios agregados.
func buildNarrative(input domain.AdAnalysisInput) string {
	var b strings.Builder

	b.WriteString("## Ad Performance Analysis\n\n")

	b.WriteString("### Performance Metrics\n")
	fmt.Fprintf(&b, "- **Click-Through Rate (CTR):** %.1f%% - %s\n", input.CTR, ctrAssessment(input.CTR))
	fmt.Fprintf(&b, "- **Conversion Rate:** %.1f%% - %s\n", input.ConversionRate, conversionAssessment(input.ConversionRate))
	fmt.Fprintf(&b, "- **Cost Per Click (CPC):** $%.2f - %s\n\n", input.CostPerClick, cpcAssessment(input.CostPerClick))

	b.WriteString("### Content Analysis\n")
	fmt.Fprintf(&b, "**Headline:** %q\n", input.AdTitle)
	b.WriteString(analyzeHeadline(input.AdTitle))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "**Ad Copy:** %q\n", input.AdCopy)
	b.WriteString(analyzeAdCopy(input.AdCopy))
	b.WriteString("\n\n")

	b.WriteString("### Key Success Factors\n")
	for i, factor := range input.SuccessFactors {
		fmt.Fprintf(&b, "%d. **%s** - %s\n", i+1, factor, explainSuccessFactor(factor))
	}
	b.WriteString("\n")

	b.WriteString("### Why This Ad Works\n")
	b.WriteString(input.WhySuccessful)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "### %s Platform Insights\n", capitalize(input.Platform))
	b.WriteString(platformInsights(input.Platform))
	b.WriteString("\n\n")

	b.WriteString("### Recommendations for Similar Ads\n")
	b.WriteString(recommendations(input))
	b.WriteString("\n\n")

	b.WriteString("### Competitive Positioning\n")
	b.WriteString(competitivePosition(input))
	b.WriteString("\n")

	return b.String()
}

func ctrAssessment(ctr float64) string {
	switch {
	case ctr >= 5:
		return "Excellent - Above industry average"
	case ctr >= 3:
		return "Good - Competitive performance"
	case ctr >= 1:
		return "Average - Room for improvement"
	default:
		return "Below average - Needs optimization"
	}
}

func conversionAssessment(rate float64) string {
	switch {
	case rate >= 5:
		return "Outstanding - High converting"
	case rate >= 2:
		return "Good - Above average"
	case rate >= 1:
		return "Average - Typical performance"
	default:
		return "Below average - Optimization needed"
	}
}

func cpcAssessment(cpc float64) string {
	switch {
	case cpc <= 1:
		return "Very efficient - Low cost"
	case cpc <= 3:
		return "Reasonable - Competitive"
	case cpc <= 5:
		return "Moderate - Acceptable"
	default:
		return "High - Consider optimization"
	}
}

func analyzeHeadline(headline string) string {
	words := len(strings.Fields(headline))

	var b strings.Builder
	switch {
	case words <= 5:
		b.WriteString("Concise and impactful. ")
	case words <= 8:
		b.WriteString("Good length for engagement. ")
	default:
		b.WriteString("Consider shortening for better impact. ")
	}

	if digitPattern.MatchString(headline) {
		b.WriteString("Numbers add credibility. ")
	}
	if strings.Contains(headline, "?") {
		b.WriteString("Question format increases engagement. ")
	}
	if urgencyPattern.MatchString(headline) {
		b.WriteString("Urgency creates action motivation. ")
	}

	return b.String()
}

func analyzeAdCopy(copy string) string {
	var b strings.Builder

	if ctaPattern.MatchString(copy) {
		b.WriteString("Clear call-to-action present. ")
	} else {
		b.WriteString("Consider adding a stronger CTA. ")
	}

	if benefitPattern.MatchString(copy) {
		b.WriteString("Benefits clearly communicated. ")
	}
	if socialProofPattern.MatchString(copy) {
		b.WriteString("Social proof elements included. ")
	}

	return b.String()
}

var successFactorExplanations = map[string]string{
	"Search intent optimization": "Matches what users are actively searching for",
	"Clear value proposition":    "Communicates unique benefits clearly",
	"Relevant keywords":          "Uses terms your audience actually searches",
	"Strong call-to-action":      "Drives immediate user action",
	"Emotional storytelling":     "Creates emotional connection with audience",
	"Visual appeal":              "Attractive imagery that captures attention",
	"Community engagement":       "Encourages social interaction and sharing",
	"Targeted audience":          "Reaches the right people at the right time",
	"Competitive positioning":    "Differentiates from competitors effectively",
	"Market analysis":            "Based on real market data and trends",
	"Keyword optimization":       "Optimized for search engine visibility",
	"Performance tracking":       "Data-driven optimization approach",
	"Data-driven insights":       "Leverages analytics for better performance",
	"Performance optimization":   "Continuously improved based on results",
	"Market intelligence":        "Uses competitive and market data",
	"Strategic positioning":      "Positioned for maximum impact",
}

func explainSuccessFactor(factor string) string {
	if explanation, ok := successFactorExplanations[factor]; ok {
		return explanation
	}
	return "Contributes to overall ad success"
}

var platformInsightTexts = map[string]string{
	domain.PlatformGoogle:    "Google Ads excels with search intent and keyword optimization. This ad likely performs well due to strong keyword relevance and clear value proposition.",
	domain.PlatformFacebook:  "Facebook's strength lies in audience targeting and visual storytelling. This ad succeeds through emotional connection and community engagement.",
	domain.PlatformInstagram: "Instagram prioritizes visual appeal and influencer-style content. Success comes from aesthetic quality and authentic storytelling.",
	domain.PlatformTikTok:    "TikTok thrives on creative, entertaining content. Viral potential comes from trend alignment and user-generated content style.",
}

func platformInsights(platform string) string {
	if insight, ok := platformInsightTexts[platform]; ok {
		return insight
	}
	return "Platform-specific optimization contributes to performance."
}

func recommendations(input domain.AdAnalysisInput) string {
	var b strings.Builder

	if input.CTR < 3 {
		b.WriteString("• Test different headlines with stronger emotional triggers\n")
		b.WriteString("• Improve ad relevance to search intent\n")
	}

	if input.ConversionRate < 2 {
		b.WriteString("• Optimize landing page experience\n")
		b.WriteString("• Add more social proof elements\n")
	}

	b.WriteString("• A/B test different ad formats\n")
	b.WriteString("• Refine audience targeting parameters\n")
	b.WriteString("• Monitor competitor strategies\n")

	return b.String()
}

func competitivePosition(input domain.AdAnalysisInput) string {
	var b strings.Builder

	switch {
	case input.CTR > 4 && input.ConversionRate > 3:
		b.WriteString("This ad is performing above industry standards, indicating strong competitive positioning. ")
	case input.CTR > 2 && input.ConversionRate > 1:
		b.WriteString("Competitive performance with room for optimization. ")
	default:
		b.WriteString("Below competitive benchmarks - consider strategic improvements. ")
	}

	fmt.Fprintf(&b, "In the %s industry on %s, this represents %s performance.",
		input.Industry, input.Platform, competitiveLevel(input.CTR, input.ConversionRate))

	return b.String()
}

func competitiveLevel(ctr, conversionRate float64) string {
	switch {
	case ctr > 5 && conversionRate > 4:
		return "top-tier"
	case ctr > 3 && conversionRate > 2:
		return "above-average"
	case ctr > 1 && conversionRate > 1:
		return "average"
	default:
		return "below-average"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
