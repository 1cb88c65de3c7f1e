package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"strings"
)

const (
	socket_file        = "/tmp/hdx-modplay.sock"
	version_major      = 1
	version_minor      = 0
	app_name           = "HDX-ModCtl"
	developer_title    = "Developer Hardiyanto"
	developer_subtitle = "Build 27/12/2025 Ebiet Version"
)

func main() {
	socketPath := flag.String("socket", socket_file, "hdx-modplay control socket")
	flag.Parse()

	// one-shot: hdx-modctl set interpolation sinc
	if flag.NArg() > 0 {
		os.Exit(oneShot(*socketPath, strings.Join(flag.Args(), " ")))
	}

	fmt.Printf("\n%s V.%d.%d\n", app_name, version_major, version_minor)
	fmt.Printf("%s %s\n", developer_title, developer_subtitle)
	conn, err := net.Dial("unix", *socketPath)
	if err != nil {
		fmt.Printf("[Error] %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	fmt.Println("CONNECTED")
	fmt.Println("Type a command (STATUS, LIST, SET <option> <value>, pause, next, ...), press Enter")
	fmt.Println(`Type "QUIT" to exit`)
	fmt.Println()

	go func() {
		in := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("hdx> ")
			if !in.Scan() {
				os.Exit(0)
			}

			line := strings.TrimSpace(in.Text())
			if line == "" {
				continue
			}
			if strings.EqualFold(line, "QUIT") {
				fmt.Println("Bye.")
				os.Exit(0)
			}

			if _, err := conn.Write([]byte(line + "\n")); err != nil {
				fmt.Println("WRITE ERROR:", err)
				os.Exit(1)
			}
		}
	}()

	sc := bufio.NewScanner(conn)
	for sc.Scan() {
		fmt.Println("RECV:", sc.Text())
	}

	fmt.Println("SOCKET CLOSED")
	os.Exit(0)
}

func oneShot(path, line string) int {
	conn, err := net.Dial("unix", path)
	if err != nil {
		fmt.Printf("[Error] %v\n", err)
		return 1
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(line + "\n")); err != nil {
		fmt.Printf("[Error] %v\n", err)
		return 1
	}
	reply, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		fmt.Printf("[Error] %v\n", err)
		return 1
	}
	reply = strings.TrimSpace(reply)
	fmt.Println(reply)
	if strings.HasPrefix(reply, "ERR") {
		return 1
	}
	return 0
}
