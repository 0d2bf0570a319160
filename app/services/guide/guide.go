package main

import (
	"flag"
	"fmt"

	"TechGuideAI/app/services/guide/internal/config"
	"TechGuideAI/app/services/guide/internal/handler"
	"TechGuideAI/app/services/guide/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/guide.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())
	ctx := svc.NewServiceContext(c)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting guide server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
