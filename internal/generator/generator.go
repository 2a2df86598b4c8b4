package generator

import (
	"fmt"
	"math/rand"
	"time"

	"traffic-info/config"
	"traffic-info/internal/model"
)

// Generator 合成流量记录生成器
// 每次Generate产出一条随机记录，域名、协议、字节数范围都来自配置
type Generator struct {
	cfg config.Generator
	rnd *rand.Rand
}

// New 创建生成器
func New(cfg config.Generator) *Generator {
	return NewWithSource(cfg, rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource 创建生成器，使用指定随机源
func NewWithSource(cfg config.Generator, src rand.Source) *Generator {
	return &Generator{
		cfg: cfg,
		rnd: rand.New(src),
	}
}

// Generate 合成一条流量记录
func (g *Generator) Generate(now time.Time) *model.TrafficRecord {
	return &model.TrafficRecord{
		Timestamp:          now,
		SourceAddress:      g.sourceAddress(),
		DestinationAddress: g.destinationAddress(),
		Domain:             g.pick(g.cfg.Domains),
		Protocol:           g.pick(g.cfg.Protocols),
		UploadBytes:        g.between(g.cfg.MinUploadBytes, g.cfg.MaxUploadBytes),
		DownloadBytes:      g.between(g.cfg.MinDownloadBytes, g.cfg.MaxDownloadBytes),
	}
}

func (g *Generator) pick(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[g.rnd.Intn(len(values))]
}

// between 返回[min, max]内的均匀随机数
func (g *Generator) between(min, max int64) int64 {
	if max <= min {
		return min
	}
	return min + g.rnd.Int63n(max-min+1)
}

// sourceAddress 生成内网风格的源地址
func (g *Generator) sourceAddress() string {
	return fmt.Sprintf("192.168.1.%d", 2+g.rnd.Intn(253))
}

// destinationAddress 生成公网风格的目的地址
func (g *Generator) destinationAddress() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		1+g.rnd.Intn(223),
		g.rnd.Intn(256),
		g.rnd.Intn(256),
		1+g.rnd.Intn(254),
	)
}
