package helper

import (
	"net/url"
	"strings"

	"TechGuideAI/app/common/consts/errno"
	"TechGuideAI/app/services/guide/internal/catalog"
	"TechGuideAI/app/services/guide/internal/guide/advisor"
	"TechGuideAI/app/services/guide/internal/guide/score"
	"TechGuideAI/app/services/guide/internal/types"
)

const (
	danawaBase   = "https://www.danawa.com"
	danawaSearch = "https://search.danawa.com/dsearch.php?query="
)

func ToChatResponse(res *advisor.Result, reasons []string) *types.ChatResponse {
	resp := &types.ChatResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "success",
		SessionId:  res.SessionID,
		State:      res.State.String(),
		Answer:     res.Answer,
	}
	items := make([]types.Recommendation, 0, len(res.Items))
	for i, v := range res.Items {
		item := types.Recommendation{
			Name:        v.Product.Name,
			Price:       FormatPrice(v.Product.PriceLowest),
			Spec:        v.Product.SpecText,
			Url:         ProductURL(v.Product),
			Rating:      v.Product.Rating,
			ReviewCount: v.Product.ReviewCount,
			Score:       int64(v.Score),
		}
		if i < len(reasons) {
			item.Reason = reasons[i]
		}
		items = append(items, item)
	}
	resp.Items = items
	return resp
}

// FormatPrice renders a catalog price cell as "1,234,000원", falling back to
// the raw cell when it does not parse as a number.
func FormatPrice(raw string) string {
	if v, ok := catalog.ParsePrice(raw); ok {
		return catalog.FormatWon(v)
	}
	return raw
}

// ProductURL normalizes catalog links: relative Danawa paths get the site
// prefix, and rows without a link fall back to a Danawa search by name.
func ProductURL(p catalog.ProductRecord) string {
	u := strings.TrimSpace(p.URL)
	switch {
	case u == "":
		return danawaSearch + url.QueryEscape(p.Name)
	case strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://"):
		return u
	case strings.HasPrefix(u, "//"):
		return "https:" + u
	case strings.HasPrefix(u, "/"):
		return danawaBase + u
	default:
		return danawaBase + "/" + u
	}
}

// ProductNames flattens candidates for the recommendation event payload.
func ProductNames(items []score.Candidate) []string {
	names := make([]string, 0, len(items))
	for _, v := range items {
		names = append(names, v.Product.Name)
	}
	return names
}
