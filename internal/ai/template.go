package ai

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
)

// templates are filled with the user's message; one is chosen at random
// unless a keyword override matches.
var templates = []string{
	"你好！我是AI助手。关于\"%s\"，这是一个很有趣的问题。让我来详细解答...\n\n首先，我们需要明确这个问题的核心要点。其次，从实践角度来看，有几个关键因素需要考虑。最后，建议你多尝试不同的方法，找到最适合的解决方案。",
	"感谢你的提问！关于\"%s\"，我可以提供以下建议：\n\n1. 首先，明确你的目标\n2. 选择合适的工具和方法\n3. 持续学习和实践\n4. 及时总结经验教训\n\n希望这对你有帮助！",
	"这是一个很好的问题！关于\"%s\"，我认为关键在于理解底层原理，然后通过实践来巩固知识。\n\n建议你从基础开始，逐步深入。有不懂的地方可以随时问我。",
	"关于\"%s\"，让我从以下几个角度来分析：\n\n📌 核心概念\n📌 应用场景\n📌 最佳实践\n📌 常见误区\n\n希望这个框架对你有帮助！",
	"你好！我注意到你在问关于\"%s\"。这个问题涉及多个层面：\n\n• 技术层面\n• 实践层面\n• 优化方向\n\n有什么具体方面需要我深入解释吗？",
}

const (
	greetingReply = "你好！我是大熊的AI助手，很高兴为你服务！有什么我可以帮助你的吗？😊"
	helpReply     = "我可以帮你做很多事情：\n\n• 回答问题\n• 写作辅助\n• 代码编写\n• 知识讲解\n• 创意头脑风暴\n\n请告诉我你需要什么帮助！"
	thanksReply   = "不客气！很高兴能帮到你。如果还有其他问题，随时问我！😊"
)

// TemplateResponder replies with canned text. It is the default backend and
// the fallback when an external provider is unavailable.
type TemplateResponder struct {
	pick func(n int) int
}

func NewTemplateResponder() *TemplateResponder {
	return &TemplateResponder{pick: rand.Intn}
}

func (t *TemplateResponder) Respond(_ context.Context, message string, _ []Message) (string, error) {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "你好"), strings.Contains(lower, "hi"), strings.Contains(lower, "hello"):
		return greetingReply, nil
	case strings.Contains(lower, "帮助"), strings.Contains(lower, "help"):
		return helpReply, nil
	case strings.Contains(lower, "谢谢"), strings.Contains(lower, "感谢"):
		return thanksReply, nil
	}
	return fmt.Sprintf(templates[t.pick(len(templates))], message), nil
}

func (t *TemplateResponder) Info() ProviderInfo {
	return ProviderInfo{
		Current:     "mock",
		Name:        "模拟响应",
		Description: "返回预设的模拟响应，完全免费",
		Enabled:     true,
	}
}
