// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"TechGuideAI/app/services/guide/internal/search"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	ChatModel ModelConf

	Tavily search.Conf

	Catalog CatalogConf

	LogConf logx.LogConf

	KafkaConf KafkaConf

	// Optional widget token secret. When empty the chat endpoints are open.
	WidgetAuth WidgetAuthConf
}

type ModelConf struct {
	BaseUrl string
	APIKey  string
	Model   string
}

type CatalogConf struct {
	File string
}

type KafkaConf struct {
	Broker              []string
	RecommendationTopic string
}

type WidgetAuthConf struct {
	Secret string `json:",optional"`
}
