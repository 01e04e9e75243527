package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"bearworld/internal/http-api/models"
	"bearworld/internal/middleware/auth"
)

// SeedData inserts the demo account and sample content on an empty database.
// Guarded by the SEED_DATA flag; a non-empty users table is left untouched.
func SeedData(db *gorm.DB, logger *slog.Logger) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		logger.Info("Seed skipped, users already present")
		return nil
	}

	hashed, err := auth.Hashpassword("admin123")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	admin := &models.User{
		Username: "大熊",
		Email:    "bear@example.com",
		Password: hashed,
		Bio:      "热爱AI与技术的探索者，致力于分享AI知识和工具",
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create seed user: %w", err)
	}

	articles := []models.Article{
		{
			Title:    "ChatGPT提示词工程完全指南",
			Slug:     "chatgpt-prompt-engineering-guide",
			Excerpt:  "掌握提示词工程的核心技巧，让AI对话更高效",
			Content:  "# ChatGPT提示词工程完全指南\n\n提示词工程（Prompt Engineering）是与AI模型高效沟通的关键技能。\n\n## 核心原则\n\n### 1. 明确具体\n模糊的提示词会导致模糊的回答。\n\n### 2. 提供上下文\n给AI足够的背景信息。\n\n### 3. 分步指令\n复杂任务分解为多个步骤。",
			Category: "AI教程",
			Tags:     "AI,ChatGPT,提示词",
			AuthorID: admin.ID,
		},
		{
			Title:    "AI图像生成工具横向评测",
			Slug:     "ai-image-generation-tools-comparison",
			Excerpt:  "主流AI绘图工具全面对比，助你选择最适合的工具",
			Content:  "# AI图像生成工具横向评测\n\n随着AI图像生成技术的快速发展，市面上出现了众多优秀工具。\n\n### Midjourney\n- 优点：艺术感强，社区活跃\n- 缺点：需要Discord，使用成本较高\n\n### Stable Diffusion\n- 优点：开源免费，本地部署\n- 缺点：需要一定技术基础",
			Category: "其他",
			Tags:     "AI,图像生成",
			AuthorID: admin.ID,
		},
		{
			Title:    "我的第一个AI项目：智能问答机器人",
			Slug:     "my-first-ai-project-qa-bot",
			Excerpt:  "分享开发基于大语言模型的问答机器人的完整过程",
			Content:  "# 我的第一个AI项目：智能问答机器人\n\n本文分享我开发智能问答机器人的完整历程。\n\n## 技术栈\n- 前端：React + TypeScript\n- 后端：Node.js + Express\n- AI：OpenAI API (GPT-3.5)\n- 数据库：MongoDB",
			Category: "项目案例",
			Tags:     "AI,项目",
			AuthorID: admin.ID,
		},
		{
			Title:    "2024年AI发展回顾与展望",
			Slug:     "ai-2024-review",
			Excerpt:  "回顾2024年AI领域的重大进展，展望未来趋势",
			Content:  "# 2024年AI发展回顾与展望\n\n2024年是AI技术飞速发展的一年。\n\n### GPT-4.5发布\n更强大的多模态能力，更低的成本。\n\n### 开源模型崛起\nLlama、Mistral等开源模型性能大幅提升。",
			Category: "个人动态",
			Tags:     "AI,年度总结",
			AuthorID: admin.ID,
		},
	}
	if err := db.Create(&articles).Error; err != nil {
		return fmt.Errorf("failed to create seed articles: %w", err)
	}

	projects := []models.Project{
		{
			Title:       "AI写作助手",
			Slug:        "ai-writing-assistant",
			Description: "基于GPT的智能写作工具，支持多种写作场景",
			Content:     "这是一个基于OpenAI API开发的智能写作助手",
			DemoURL:     "#",
			GithubURL:   "#",
			TechStack:   "React, Node.js, OpenAI API",
			Featured:    true,
		},
		{
			Title:       "智能图像识别系统",
			Slug:        "smart-image-recognition",
			Description: "支持多种物体识别的视觉AI系统",
			Content:     "使用YOLOv8开发的物体检测系统",
			DemoURL:     "#",
			GithubURL:   "#",
			TechStack:   "Python, PyTorch",
			Featured:    true,
		},
		{
			Title:       "AI聊天机器人平台",
			Slug:        "ai-chat-platform",
			Description: "支持多模型切换的对话平台",
			Content:     "整合多个大语言模型的聊天平台",
			DemoURL:     "#",
			GithubURL:   "#",
			TechStack:   "Vue3, FastAPI, LangChain",
			Featured:    false,
		},
	}
	if err := db.Create(&projects).Error; err != nil {
		return fmt.Errorf("failed to create seed projects: %w", err)
	}

	messages := []models.Message{
		{Name: "访客小明", Email: "xiaoming@example.com", Content: "网站做得真棒！赛博朋克风格很有科技感。"},
		{Name: "AI爱好者", Email: "ai_fan@163.com", Content: "大熊哥，AI教程写得非常好，期待更多内容！"},
	}
	if err := db.Create(&messages).Error; err != nil {
		return fmt.Errorf("failed to create seed messages: %w", err)
	}

	configs := []models.ConfigEntry{
		{Key: "deepseek_api_key", Value: ""},
		{Key: "ai_model", Value: "deepseek-chat"},
	}
	if err := db.Create(&configs).Error; err != nil {
		return fmt.Errorf("failed to create seed config: %w", err)
	}

	logger.Info("Seed data inserted", slog.Int("articles", len(articles)), slog.Int("projects", len(projects)))
	return nil
}
