// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i18n

// Built-in label tables. Other languages load from translation files.

var builtinEnglish = map[string]string{
	"system_performance":    "System Performance",
	"system_memory":         "System Memory",
	"total_memory":          "Total Memory",
	"each_process":          "Each Process",
	"hardware_info":         "Hardware Info",
	"gpu_info":              "GPU Info",
	"network_info":          "Network Info",
	"help":                  "Help",
	"copyright":             "Copyright",
	"license":               "License",
	"cpu_architecture":      "CPU Architecture",
	"number_of_processors":  "Number of Processors",
	"cpu_brand":             "CPU Brand",
	"total_physical_memory": "Total Physical Memory",
	"used_physical_memory":  "Used Physical Memory",
	"free_physical_memory":  "Free Physical Memory",
	"memory_usage":          "Memory Usage",
	"cpu_usage":             "CPU Usage",
	"hostname":              "Hostname",
	"platform":              "Platform",
	"uptime":                "Uptime",
	"process_name":          "Name",
	"process_pid":           "PID",
	"process_memory":        "Memory",
	"interface":             "Interface",
	"bytes_sent":            "Bytes Sent",
	"bytes_received":        "Bytes Received",
	"connections":           "Connections",
	"port_open":             "open",
	"port_scan":             "Port Scan",
	"gpu_unavailable":       "GPU information unavailable",
	"utilization":           "Utilization",
	"temperature":           "Temperature",
}

var builtinChinese = map[string]string{
	"system_performance":    "系统性能",
	"system_memory":         "系统内存",
	"total_memory":          "总内存",
	"each_process":          "每个进程",
	"hardware_info":         "硬件信息",
	"gpu_info":              "GPU信息",
	"network_info":          "网络信息",
	"help":                  "帮助",
	"copyright":             "版权",
	"license":               "许可证",
	"cpu_architecture":      "CPU架构",
	"number_of_processors":  "处理器数量",
	"cpu_brand":             "CPU品牌",
	"total_physical_memory": "总物理内存",
	"used_physical_memory":  "已用物理内存",
	"free_physical_memory":  "可用物理内存",
	"memory_usage":          "内存使用率",
	"cpu_usage":             "CPU使用率",
	"hostname":              "主机名",
	"platform":              "平台",
	"uptime":                "运行时间",
	"process_name":          "名称",
	"process_pid":           "进程号",
	"process_memory":        "内存",
	"interface":             "网络接口",
	"bytes_sent":            "发送字节",
	"bytes_received":        "接收字节",
	"connections":           "连接数",
	"port_open":             "开放",
	"port_scan":             "端口扫描",
	"gpu_unavailable":       "无法获取GPU信息",
	"utilization":           "使用率",
	"temperature":           "温度",
}
