package handler

import (
	"net/http"

	"github.com/adgenius/adgenius-api/internal/api/handler/router"
	"github.com/adgenius/adgenius-api/internal/usecases/activity"
	"github.com/adgenius/adgenius-api/internal/usecases/analyzing"
	"github.com/adgenius/adgenius-api/internal/usecases/authenticating"
	"github.com/adgenius/adgenius-api/internal/usecases/billing"
	"github.com/adgenius/adgenius-api/internal/usecases/campaign"
	"github.com/adgenius/adgenius-api/internal/usecases/discovering"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Inspirations(service discovering.Discoverer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/inspirations",
			Method:  http.MethodPost,
			Handler: DiscoverInspirations(service),
		},
		{
			Path:    "/v1/inspirations/:id",
			Method:  http.MethodGet,
			Handler: GetInspiration(service),
		},
	}
}

func Analysis(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/inspirations/analyze",
			Method:  http.MethodPost,
			Handler: AnalyzeAd(service),
		},
	}
}

func Campaigns(service campaign.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns/analyze",
			Method:  http.MethodPost,
			Handler: AnalyzeCampaign(service),
		},
		{
			Path:    "/v1/links/analyze",
			Method:  http.MethodPost,
			Handler: AnalyzeLink(service),
		},
		{
			Path:    "/v1/ads/generate",
			Method:  http.MethodPost,
			Handler: GenerateAd(service),
		},
	}
}

func History(service activity.Historian) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/history",
			Method:  http.MethodGet,
			Handler: GetHistory(service),
		},
	}
}

func Billing(service billing.Biller) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/billing/checkout",
			Method:  http.MethodPost,
			Handler: CreateCheckout(service),
		},
		{
			Path:    "/v1/billing/confirm",
			Method:  http.MethodPost,
			Handler: ConfirmCheckout(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
