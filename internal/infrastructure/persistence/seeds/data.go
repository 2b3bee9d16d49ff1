package seeds

import (
	"github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/domain/category"
	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/domain/setting"
)

func strPtr(s string) *string { return &s }

func sampleReports() []*report.Report {
	return []*report.Report{
		{
			AccusedName:   "Nguyễn Văn A",
			PhoneNumber:   "0123456789",
			AccountNumber: strPtr("1234567890123"),
			Bank:          strPtr("vietcombank"),
			Amount:        5000000,
			Description:   "Giả làm người bán hàng online trên Facebook. Đã chuyển khoản nhưng không nhận được hàng và bị chặn liên lạc.",
			ReporterName:  strPtr("Trần Thị B"),
			ReporterPhone: strPtr("0987654321"),
			Category:      "online_shopping",
			IsPublic:      true,
		},
		{
			AccusedName:   "Lê Minh C",
			PhoneNumber:   "0987123456",
			AccountNumber: strPtr("9876543210987"),
			Bank:          strPtr("techcombank"),
			Amount:        10000000,
			Description:   "Rủ đầu tư tiền ảo với lợi nhuận cao. Sau khi nạp tiền thì không rút được và mất liên lạc.",
			IsAnonymous:   true,
			Category:      "investment",
			Priority:      report.PriorityHigh,
			IsPublic:      true,
		},
		{
			AccusedName:   "Phạm Văn D",
			PhoneNumber:   "0369852147",
			Amount:        2000000,
			Description:   "Nhắn tin giả mạo ngân hàng, yêu cầu cập nhật thông tin qua link lạ và đọc mã OTP.",
			ReporterName:  strPtr("Hoàng Thị E"),
			ReporterPhone: strPtr("0912345678"),
			Category:      "impersonation",
			IsPublic:      true,
		},
	}
}

func samplePosts() []*blog.Post {
	return []*blog.Post{
		{
			Title:      "10 thủ đoạn lừa đảo phổ biến nhất năm 2024",
			Slug:       "10-thu-doan-lua-dao-pho-bien-nhat-2024",
			Excerpt:    "Tổng hợp những phương thức lừa đảo mới nhất, từ giả mạo ngân hàng đến rủ rê đầu tư.",
			Content:    "Các thủ đoạn lừa đảo ngày càng tinh vi. Đây là 10 hình thức phổ biến nhất:\n\n1. Giả mạo tin nhắn ngân hàng\n2. Lừa đảo qua mạng xã hội\n3. Đầu tư tiền ảo lợi nhuận cao\n4. Giả danh công an\n5. Ứng dụng hẹn hò\n6. Bán hàng online không giao hàng\n7. Vay tiền online\n8. Giả danh nhân viên bảo hiểm\n9. Game online\n10. Chiếm đoạt tài khoản Facebook\n\nHãy luôn xác minh thông tin từ nhiều nguồn trước khi giao dịch.",
			CoverImage: strPtr("https://images.unsplash.com/photo-1563013544-824ae1b704d3"),
			Tags:       []string{"lừa đảo online", "phòng chống", "cảnh báo"},
			Category:   "awareness",
			ReadTime:   8,
			Featured:   true,
		},
		{
			Title:      "Cách nhận biết tin nhắn lừa đảo từ ngân hàng",
			Slug:       "cach-nhan-biet-tin-nhan-lua-dao-tu-ngan-hang",
			Excerpt:    "Hướng dẫn phân biệt tin nhắn thật và giả mạo ngân hàng.",
			Content:    "Ngân hàng không bao giờ yêu cầu thông tin cá nhân qua tin nhắn. Dấu hiệu nhận biết:\n\n- Yêu cầu cung cấp mã OTP\n- Link dẫn tới trang không chính thức\n- Thông báo tài khoản bị khóa đột ngột\n- Số gửi tin không phải của ngân hàng\n\nHãy liên hệ hotline chính thức để xác minh.",
			CoverImage: strPtr("https://images.unsplash.com/photo-1554224155-6726b3ff858f"),
			Tags:       []string{"ngân hàng", "tin nhắn", "phòng chống"},
			Category:   "guides",
			ReadTime:   5,
		},
		{
			Title:      "Lừa đảo qua mạng xã hội: cách thức và phòng tránh",
			Slug:       "lua-dao-qua-mang-xa-hoi-cach-thuc-va-phong-tranh",
			Excerpt:    "Các hình thức lừa đảo phổ biến trên Facebook, Zalo và cách bảo vệ bản thân.",
			Content:    "Thủ đoạn phổ biến:\n\n- Giả mạo người quen\n- Bán hàng giả\n- Lừa tình cảm\n- Đầu tư ảo\n\nCách phòng tránh:\n\n- Xác minh qua cuộc gọi video\n- Không chuyển tiền cho người lạ\n- Báo cáo tài khoản đáng ngờ\n- Dùng mật khẩu mạnh",
			CoverImage: strPtr("https://images.unsplash.com/photo-1611224923853-80b023f02d71"),
			Tags:       []string{"mạng xã hội", "facebook", "zalo"},
			Category:   "awareness",
			ReadTime:   7,
		},
	}
}

func sampleReportCategories() []*category.ReportCategory {
	return []*category.ReportCategory{
		{Name: "investment", Description: strPtr("Lừa đảo đầu tư, tiền ảo"), Color: "#dc2626", IsActive: true},
		{Name: "online_shopping", Description: strPtr("Mua bán online không giao hàng"), Color: "#ea580c", IsActive: true},
		{Name: "impersonation", Description: strPtr("Giả danh ngân hàng, công an"), Color: "#7c3aed", IsActive: true},
		{Name: "romance", Description: strPtr("Lừa đảo tình cảm"), Color: "#db2777", IsActive: true},
		{Name: report.DefaultCategory, Description: strPtr("Khác"), Color: category.DefaultColor, IsActive: true},
	}
}

func sampleBlogCategories() []*category.BlogCategory {
	return []*category.BlogCategory{
		{Name: "Cảnh báo", Slug: "awareness", Color: "#dc2626", IsActive: true},
		{Name: "Hướng dẫn", Slug: "guides", Color: "#2563eb", IsActive: true},
		{Name: "Tin tức", Slug: blog.DefaultCategory, Color: category.DefaultColor, IsActive: true},
	}
}

type settingSeed struct {
	key         string
	value       string
	description string
}

func defaultSettings() []settingSeed {
	return []settingSeed{
		{setting.KeySiteName, "ScamGuard", "Tên hiển thị của website"},
		{setting.KeyMaintenanceMode, "false", "Tạm ngưng nhận tố cáo và tin nhắn mới"},
		{setting.KeyMaxReportsPerDay, "10", "Số tố cáo tối đa mỗi IP mỗi ngày"},
		{setting.KeyChatReplyStrategy, "rules", "Cách trả lời chat: rules hoặc ai"},
	}
}
